package grpcserver

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/patric-chuzhbe/guessnum/internal/auth"
	"github.com/patric-chuzhbe/guessnum/internal/game"
	"github.com/patric-chuzhbe/guessnum/internal/models"

	pb "github.com/patric-chuzhbe/guessnum/internal/grpcserver/proto"
	"github.com/patric-chuzhbe/guessnum/internal/service"
)

type GameHandler struct {
	pb.UnimplementedGameServiceServer
	svc  *service.Service
	auth authenticator
}

func NewGameHandler(svc *service.Service, auth authenticator) *GameHandler {
	return &GameHandler{svc: svc, auth: auth}
}

func (h *GameHandler) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	registration := models.RegisterRequest{
		Name:     req.GetName(),
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
	}

	validate := validator.New()
	if err := validate.Struct(registration); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	usr, err := h.svc.Register(ctx, registration)
	switch {
	case errors.Is(err, models.ErrNameAlreadyTaken), errors.Is(err, models.ErrEmailAlreadyTaken):
		return nil, status.Error(codes.AlreadyExists, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, "failed to register user")
	}

	token, err := h.auth.BuildJWTString(&auth.Claims{UserID: usr.ID})
	if err != nil {
		return nil, status.Error(codes.Internal, "could not generate token")
	}

	return &pb.RegisterResponse{
		Token: token,
		Name:  usr.Name,
	}, nil
}

func (h *GameHandler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	credentials := models.LoginRequest{
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
	}

	validate := validator.New()
	if err := validate.Struct(credentials); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	usr, err := h.svc.Login(ctx, credentials)
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		return nil, status.Error(codes.Unauthenticated, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, "failed to log in")
	}

	token, err := h.auth.BuildJWTString(&auth.Claims{UserID: usr.ID})
	if err != nil {
		return nil, status.Error(codes.Internal, "could not generate token")
	}

	return &pb.LoginResponse{
		Token:      token,
		Name:       usr.Name,
		Attempts:   usr.Attempts,
		Wins:       usr.Wins,
		LastResult: usr.LastResult,
	}, nil
}

func (h *GameHandler) SubmitGuess(ctx context.Context, req *pb.SubmitGuessRequest) (*pb.SubmitGuessResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(string)
	if !ok || userID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing user ID")
	}

	result, err := h.svc.SubmitGuess(ctx, userID, int(req.GetGuess()))
	switch {
	case errors.Is(err, game.ErrGuessOutOfRange):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, models.ErrNoSuchUser):
		return nil, status.Error(codes.Unauthenticated, "unknown user")
	case err != nil:
		return nil, status.Error(codes.Internal, "failed to evaluate guess")
	}

	return &pb.SubmitGuessResponse{
		Result:   result.Result,
		Message:  result.Message,
		Attempts: result.Attempts,
		Correct:  result.Correct,
	}, nil
}

func (h *GameHandler) ListUsers(ctx context.Context, _ *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	users, err := h.svc.ListUsers(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to retrieve users")
	}

	resp := &pb.ListUsersResponse{Users: make([]*pb.LeaderboardEntry, len(users))}
	for i, usr := range users {
		resp.Users[i] = &pb.LeaderboardEntry{
			Id:         usr.ID,
			Name:       usr.Name,
			Attempts:   usr.Attempts,
			Wins:       usr.Wins,
			LastResult: usr.LastResult,
		}
	}

	return resp, nil
}

func (h *GameHandler) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	if err := h.svc.Ping(ctx); err != nil {
		return nil, status.Error(codes.Unavailable, "storage is unavailable")
	}
	return &pb.PingResponse{Ok: true}, nil
}

func (h *GameHandler) GetInternalStats(ctx context.Context, _ *pb.GetInternalStatsRequest) (*pb.GetInternalStatsResponse, error) {
	stats, err := h.svc.GetInternalStats(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to retrieve internal stats")
	}

	return &pb.GetInternalStatsResponse{
		Users:  stats.Users,
		Rounds: stats.Rounds,
	}, nil
}
