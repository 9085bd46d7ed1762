// Package server pairs up Columns players and relays their game state
// during a versus match.
package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"columns/proto"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

const (
	player1 int32 = 1
	player2 int32 = 2
)

// pollInterval is how often an enrolled player checks whether an
// opponent has arrived.
const pollInterval = 50 * time.Millisecond

// match holds one relay channel per player. Each channel carries the
// messages destined for that player and is closed by the opposite
// side when it leaves the session.
type match struct {
	p1Ch, p2Ch     chan *proto.GameMessage
	p1conn, p2conn bool
}

func newMatch() *match {
	return &match{
		p1Ch: make(chan *proto.GameMessage, 10),
		p2Ch: make(chan *proto.GameMessage, 10),
	}
}

func (m *match) ready() bool { return m.p1conn && m.p2conn }

type columnsServer struct {
	proto.UnimplementedColumnsServiceServer
	matches    map[string]*match
	waitListID string
	mu         sync.Mutex
}

func New() proto.ColumnsServiceServer {
	return &columnsServer{matches: make(map[string]*match)}
}

// NewGame enrolls the caller: the first player opens a match and waits,
// the second joins the waiting one. The stream carries the game
// parameters immediately and again, with Started set, once both players
// are in.
func (s *columnsServer) NewGame(_ *proto.NewGameRequest, stream proto.ColumnsService_NewGameServer) error {
	s.mu.Lock()
	var params *proto.GameParams
	if s.waitListID == "" {
		gameID := uuid.New().String()
		m := newMatch()
		m.p1conn = true
		s.matches[gameID] = m
		s.waitListID = gameID
		params = &proto.GameParams{GameId: gameID, Player: player1}
	} else {
		gameID := s.waitListID
		s.waitListID = ""
		s.matches[gameID].p2conn = true
		params = &proto.GameParams{GameId: gameID, Player: player2}
	}
	s.mu.Unlock()

	if err := stream.Send(params); err != nil {
		return fmt.Errorf("sending game params: %w", err)
	}

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			s.abandon(params.GameId)
			return ctx.Err()
		case <-time.After(pollInterval):
		}

		s.mu.Lock()
		m, ok := s.matches[params.GameId]
		ready := ok && m.ready()
		s.mu.Unlock()
		if !ok {
			return errors.New("match was abandoned")
		}
		if ready {
			params.Started = true
			if err := stream.Send(params); err != nil {
				return fmt.Errorf("sending game params: %w", err)
			}
			return nil
		}
	}
}

// abandon removes a match whose opening player left before an opponent
// arrived.
func (s *columnsServer) abandon(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waitListID == gameID {
		s.waitListID = ""
	}
	if m, ok := s.matches[gameID]; ok && !m.ready() {
		delete(s.matches, gameID)
	}
}

// GameSession relays every received message to the other player of the
// match named by the first message's game ID.
func (s *columnsServer) GameSession(stream grpc.BidiStreamingServer[proto.GameMessage, proto.GameMessage]) error {
	var out chan<- *proto.GameMessage
	joined := false

	for {
		rcv, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("receiving session message: %w", err)
		}

		if !joined {
			s.mu.Lock()
			m, ok := s.matches[rcv.GetGameId()]
			s.mu.Unlock()
			if !ok {
				return errors.New("unknown game ID")
			}

			var in <-chan *proto.GameMessage
			switch rcv.GetPlayer() {
			case player1:
				in, out = m.p1Ch, m.p2Ch
			case player2:
				in, out = m.p2Ch, m.p1Ch
			default:
				return fmt.Errorf("invalid player %d", rcv.GetPlayer())
			}
			defer s.leave(rcv.GetGameId(), out)

			go forward(stream, in)
			joined = true
		}

		select {
		case out <- rcv:
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}

// forward streams the opponent's messages to this player until the
// opponent leaves or the stream ends.
func forward(stream grpc.BidiStreamingServer[proto.GameMessage, proto.GameMessage], in <-chan *proto.GameMessage) {
	for {
		select {
		case msg, ok := <-in:
			if !ok {
				return
			}
			if err := stream.Send(msg); err != nil {
				slog.Error("relaying game message", "error", err)
				return
			}
		case <-stream.Context().Done():
			return
		}
	}
}

// leave closes the channel this player was writing to, which stops the
// opponent's forwarder, and drops the match. Each side closes only its
// own outbound channel, so a double close cannot happen.
func (s *columnsServer) leave(gameID string, out chan<- *proto.GameMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	close(out)
	delete(s.matches, gameID)
}
