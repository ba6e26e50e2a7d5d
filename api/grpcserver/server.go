package grpcserver

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "matchcore/api/pb"
	"matchcore/domain/orderbook"
	"matchcore/service"
)

// Server adapts OrderService to gRPC.
type Server struct {
	pb.UnimplementedOrderServiceServer
	svc *service.OrderService
	log *zap.Logger
}

func NewServer(svc *service.OrderService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, log: log.Named("grpc")}
}

// NewGRPCServer returns a grpc.Server with the adapter registered and
// request logging installed.
func NewGRPCServer(svc *service.OrderService, log *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	s := NewServer(svc, log)
	opts = append(opts, grpc.ChainUnaryInterceptor(s.logUnary))
	srv := grpc.NewServer(opts...)
	pb.RegisterOrderServiceServer(srv, s)
	return srv
}

// -------------------- Commands --------------------

func (s *Server) PlaceOrder(ctx context.Context, req *pb.PlaceOrderRequest) (*pb.PlaceOrderResponse, error) {
	side, err := toSide(req.Side)
	if err != nil {
		return nil, err
	}
	kind, err := toKind(req.Type)
	if err != nil {
		return nil, err
	}

	res, err := s.svc.PlaceOrder(ctx, orderbook.Request{
		Side:     side,
		Kind:     kind,
		Price:    req.Price,
		Quantity: req.Qty,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.PlaceOrderResponse{
		Status:     "ok",
		SeqId:      res.Seq,
		OrderId:    res.OrderID,
		Executions: make([]*pb.Execution, 0, len(res.Executions)),
	}
	for _, e := range res.Executions {
		resp.Executions = append(resp.Executions, &pb.Execution{
			BuyOrderId:  e.BuyOrderID,
			SellOrderId: e.SellOrderID,
			Price:       e.Price,
			Qty:         e.Quantity,
		})
	}
	return resp, nil
}

func (s *Server) CancelOrder(ctx context.Context, req *pb.CancelOrderRequest) (*pb.CancelOrderResponse, error) {
	seq, err := s.svc.CancelOrder(ctx, req.OrderId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CancelOrderResponse{Status: "ok", SeqId: seq}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetOrder(ctx context.Context, req *pb.GetOrderRequest) (*pb.GetOrderResponse, error) {
	o, loc, ok := s.svc.Order(req.OrderId)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "order %d not found", req.OrderId)
	}
	return &pb.GetOrderResponse{Order: &pb.OrderEntry{
		Id:       o.ID,
		Side:     fromSide(o.Side),
		Type:     fromKind(o.Kind),
		Price:    o.Price,
		Qty:      o.Quantity,
		Filled:   o.Filled,
		AtMarket: loc.AtMarket,
	}}, nil
}

func (s *Server) GetBook(ctx context.Context, req *pb.GetBookRequest) (*pb.GetBookResponse, error) {
	if req.Depth < 0 {
		return nil, status.Error(codes.InvalidArgument, "depth must not be negative")
	}
	v := s.svc.Book(int(req.Depth))
	return &pb.GetBookResponse{
		Isin:         v.Security.ISIN,
		Name:         v.Security.Name,
		MarketPrice:  v.MarketPrice,
		NextOrderId:  v.NextID,
		Bids:         fromLevels(v.Bids),
		Asks:         fromLevels(v.Asks),
		BuyAtMarket:  int32(v.BuyAtMarket),
		SellAtMarket: int32(v.SellAtMarket),
	}, nil
}

// -------------------- Interceptor --------------------

func (s *Server) logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	fields := []zap.Field{
		zap.String("method", info.FullMethod),
		zap.Duration("took", time.Since(start)),
		zap.Stringer("code", status.Code(err)),
	}
	switch status.Code(err) {
	case codes.OK, codes.InvalidArgument, codes.NotFound, codes.FailedPrecondition:
		s.log.Debug("rpc", fields...)
	default:
		s.log.Warn("rpc", append(fields, zap.Error(err))...)
	}
	return resp, err
}

// -------------------- Converters --------------------

func toStatus(err error) error {
	switch {
	case errors.Is(err, orderbook.ErrInvalidQuantity),
		errors.Is(err, orderbook.ErrInvalidPrice),
		errors.Is(err, orderbook.ErrInvalidSide),
		errors.Is(err, orderbook.ErrInvalidKind):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, orderbook.ErrPriceOutOfBand):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, orderbook.ErrOrderNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrHalted):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toSide(s pb.Side) (orderbook.Side, error) {
	switch s {
	case pb.Side_BID:
		return orderbook.Buy, nil
	case pb.Side_ASK:
		return orderbook.Sell, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "side %v: %v", s, orderbook.ErrInvalidSide)
	}
}

func toKind(t pb.OrderType) (orderbook.Kind, error) {
	switch t {
	case pb.OrderType_LIMIT:
		return orderbook.Limit, nil
	case pb.OrderType_MARKET:
		return orderbook.Market, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "order type %v: %v", t, orderbook.ErrInvalidKind)
	}
}

func fromSide(s orderbook.Side) pb.Side {
	if s == orderbook.Sell {
		return pb.Side_ASK
	}
	return pb.Side_BID
}

func fromKind(k orderbook.Kind) pb.OrderType {
	if k == orderbook.Market {
		return pb.OrderType_MARKET
	}
	return pb.OrderType_LIMIT
}

func fromLevels(levels []orderbook.Level) []*pb.Level {
	out := make([]*pb.Level, len(levels))
	for i, l := range levels {
		out[i] = &pb.Level{Price: l.Price, Qty: l.Quantity, Orders: int32(l.Orders)}
	}
	return out
}
