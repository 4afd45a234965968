package grpcserver

import (
	"context"
	"database/sql"
	"net"

	"github.com/patric-chuzhbe/guessnum/internal/auth"
	"github.com/patric-chuzhbe/guessnum/internal/user"

	"github.com/patric-chuzhbe/guessnum/internal/grpcserver/interceptor"

	"google.golang.org/grpc"

	pb "github.com/patric-chuzhbe/guessnum/internal/grpcserver/proto"
)

type authenticator interface {
	GetUserIDFromToken(tokenString string) (string, error)
	BuildJWTString(claims *auth.Claims) (string, error)
}

type userKeeper interface {
	GetUserByID(ctx context.Context, userID string, transaction *sql.Tx) (*user.User, error)
}

func NewGRPCServer(
	addr string,
	handler *GameHandler,
	auth authenticator,
	db userKeeper,
) (*grpc.Server, net.Listener, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}

	authInterceptor := interceptor.NewAuthInterceptor(auth, db)

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptor.UnaryLoggingInterceptor(),
			authInterceptor.UnaryAuthInterceptor([]string{
				"/guessnum.GameService/SubmitGuess",
			}),
		),
	)
	pb.RegisterGameServiceServer(server, handler)

	return server, lis, nil
}
