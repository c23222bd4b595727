package grpcserver

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "hermes/api/tradingpb"
	"hermes/domain/orderbook"
	"hermes/service"
)

// Server adapts OrderService to gRPC. Business failures travel in the
// response status, not as gRPC errors: a rejected order is a normal
// outcome, not a transport fault.
type Server struct {
	pb.UnimplementedTradingEngineServer
	svc   *service.OrderService
	scale int64
	log   *zap.Logger
}

// NewServer wires the service behind the TradingEngine API. scale converts
// wire-side decimal prices to integer ticks.
func NewServer(svc *service.OrderService, scale int64, log *zap.Logger) *Server {
	if scale <= 0 {
		scale = 1
	}
	return &Server{svc: svc, scale: scale, log: log}
}

// -------------------- Commands --------------------

func (s *Server) SubmitOrder(
	ctx context.Context,
	req *pb.OrderRequest,
) (*pb.TradeResponse, error) {
	res, err := s.svc.Submit(
		req.InstrumentId,
		req.OrderId,
		req.ClientId,
		toSide(req.Side),
		toType(req.OrderType),
		s.toTicks(req.Price),
		req.Quantity,
	)
	if err != nil {
		s.log.Debug("submit rejected",
			zap.Uint64("order_id", req.OrderId), zap.Error(err))
		return &pb.TradeResponse{Status: toStatus(err)}, nil
	}

	return s.tradeResponse(res), nil
}

func (s *Server) ModifyOrder(
	ctx context.Context,
	req *pb.ModifyOrderRequest,
) (*pb.TradeResponse, error) {
	res, err := s.svc.Modify(
		req.OrderId,
		req.ClientId,
		s.toTicks(req.NewPrice),
		req.NewQuantity,
		toSide(req.Side),
	)
	if err != nil {
		s.log.Debug("modify rejected",
			zap.Uint64("order_id", req.OrderId), zap.Error(err))
		return &pb.TradeResponse{Status: toStatus(err)}, nil
	}

	return s.tradeResponse(res), nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.CancelOrderResponse, error) {
	ok, err := s.svc.Cancel(req.OrderId, req.ClientId)
	if err != nil {
		s.log.Debug("cancel rejected",
			zap.Uint64("order_id", req.OrderId), zap.Error(err))
		return &pb.CancelOrderResponse{Success: false}, nil
	}

	return &pb.CancelOrderResponse{Success: ok}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetDepth(
	ctx context.Context,
	req *pb.DepthRequest,
) (*pb.DepthResponse, error) {
	snap, err := s.svc.Depth(req.InstrumentId, int(req.Depth))
	if err != nil {
		// DepthResponse carries no status field, so an unknown instrument
		// surfaces as a gRPC error instead of an empty book.
		if errors.Is(err, orderbook.ErrUnknownInstrument) {
			return nil, status.Errorf(codes.NotFound, "unknown instrument %q", req.InstrumentId)
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	resp := &pb.DepthResponse{
		Bids: make([]*pb.DepthLevel, 0, len(snap.Bids)),
		Asks: make([]*pb.DepthLevel, 0, len(snap.Asks)),
	}
	for _, lvl := range snap.Bids {
		resp.Bids = append(resp.Bids, &pb.DepthLevel{
			Price:    s.toPrice(lvl.Price),
			Quantity: lvl.Qty,
		})
	}
	for _, lvl := range snap.Asks {
		resp.Asks = append(resp.Asks, &pb.DepthLevel{
			Price:    s.toPrice(lvl.Price),
			Quantity: lvl.Qty,
		})
	}
	return resp, nil
}

// -------------------- Converters --------------------

func (s *Server) toTicks(price float64) int64 {
	return int64(math.Round(price * float64(s.scale)))
}

func (s *Server) toPrice(ticks int64) float64 {
	return float64(ticks) / float64(s.scale)
}

func (s *Server) tradeResponse(res orderbook.Result) *pb.TradeResponse {
	resp := &pb.TradeResponse{
		Status: fromStatus(res.Status),
		Trades: make([]*pb.TradeInfo, 0, len(res.Trades)),
	}
	for _, t := range res.Trades {
		resp.Trades = append(resp.Trades, &pb.TradeInfo{
			MakerOrderId: t.MakerID,
			TakerOrderId: t.TakerID,
			Price:        s.toPrice(t.Price),
			Quantity:     t.Qty,
		})
	}
	return resp
}

func toSide(side pb.Side) orderbook.Side {
	if side == pb.Side_SELL {
		return orderbook.Ask
	}
	return orderbook.Bid
}

func toType(t pb.OrderType) orderbook.OrderType {
	switch t {
	case pb.OrderType_MARKET:
		return orderbook.Market
	case pb.OrderType_FILL_AND_KILL:
		return orderbook.FillAndKill
	case pb.OrderType_FILL_OR_KILL:
		return orderbook.FillOrKill
	default:
		return orderbook.GoodTillCancel
	}
}

func fromStatus(st orderbook.Status) pb.OrderStatus {
	switch st {
	case orderbook.Accepted:
		return pb.OrderStatus_ACCEPTED
	case orderbook.PartiallyFilled:
		return pb.OrderStatus_PARTIALLY_FILLED
	case orderbook.Filled:
		return pb.OrderStatus_FILLED
	case orderbook.Modified:
		return pb.OrderStatus_MODIFIED
	default:
		return pb.OrderStatus_REJECTED
	}
}

func toStatus(err error) pb.OrderStatus {
	switch {
	case errors.Is(err, orderbook.ErrDuplicateOrder):
		return pb.OrderStatus_DUPLICATE_ORDER
	case errors.Is(err, orderbook.ErrOrderNotFound):
		return pb.OrderStatus_ORDER_NOT_FOUND
	case errors.Is(err, orderbook.ErrUnauthorized):
		return pb.OrderStatus_UNAUTHORIZED
	case errors.Is(err, orderbook.ErrUnknownInstrument):
		return pb.OrderStatus_UNKNOWN_INSTRUMENT
	default:
		return pb.OrderStatus_REJECTED
	}
}
