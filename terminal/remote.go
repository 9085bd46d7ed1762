package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"columns/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// remoteClient handles the online side of a versus match: enrollment,
// the relay session, and the channels the game loop talks through.
type remoteClient struct {
	name   string
	addr   string
	logger *slog.Logger

	conn   *grpc.ClientConn
	params *proto.GameParams
	rcvCh  chan *proto.GameMessage
	sndCh  chan *proto.GameMessage
}

func newRemoteClient(name, addr string, l *slog.Logger) *remoteClient {
	return &remoteClient{
		name:   name,
		addr:   addr,
		logger: l,
		rcvCh:  make(chan *proto.GameMessage, 10),
		sndCh:  make(chan *proto.GameMessage, 10),
	}
}

// start dials the server, enrolls through NewGame, waits until an
// opponent arrives and opens the relay session. It returns once the
// match is ready to play.
func (r *remoteClient) start(ctx context.Context) error {
	conn, err := grpc.NewClient(r.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("creating gRPC client: %w", err)
	}
	r.conn = conn
	csc := proto.NewColumnsServiceClient(conn)

	ng, err := csc.NewGame(ctx, &proto.NewGameRequest{})
	if err != nil {
		return fmt.Errorf("calling NewGame: %w", err)
	}
	for !r.params.GetStarted() {
		params, err := ng.Recv()
		if err != nil {
			return fmt.Errorf("waiting for an opponent: %w", err)
		}
		r.params = params
	}

	gs, err := csc.GameSession(ctx)
	if err != nil {
		return fmt.Errorf("opening game session: %w", err)
	}
	// announce ourselves so the server wires up the relay before the
	// first game tick
	if err := gs.Send(&proto.GameMessage{
		GameId: r.params.GetGameId(),
		Player: r.params.GetPlayer(),
		Name:   r.name,
	}); err != nil {
		return fmt.Errorf("joining game session: %w", err)
	}

	go func() {
		for msg := range r.sndCh {
			msg.GameId = r.params.GetGameId()
			msg.Player = r.params.GetPlayer()
			if err := gs.Send(msg); err != nil {
				r.logger.Error("unable to send game message", slog.String("error", err.Error()))
				return
			}
		}
	}()

	go func() {
		defer close(r.rcvCh)
		for {
			rcv, err := gs.Recv()
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					return
				}
				r.logger.Error("unable to receive game message", slog.String("error", err.Error()))
				return
			}
			select {
			case r.rcvCh <- rcv:
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// send queues a message for the opponent without ever blocking the game
// loop; a stale field snapshot is droppable.
func (r *remoteClient) send(msg *proto.GameMessage) {
	select {
	case r.sndCh <- msg:
	default:
	}
}

func (r *remoteClient) close() {
	close(r.sndCh)
	if r.conn != nil {
		r.conn.Close()
	}
}
