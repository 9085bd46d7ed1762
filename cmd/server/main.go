package main

import (
	"flag"
	"fmt"
	"log"
	"net"

	"columns/proto"
	"columns/server"

	"google.golang.org/grpc"
)

func main() {
	addr := flag.String("addr", ":9000", "address to listen on")
	flag.Parse()

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	defer lis.Close()
	s := grpc.NewServer()
	defer s.Stop()
	proto.RegisterColumnsServiceServer(s, server.New())

	fmt.Printf("starting server on %s...\n", *addr)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
