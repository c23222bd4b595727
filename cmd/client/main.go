package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "hermes/api/tradingpb"
)

// Diagnostic client: runs a small matching scenario against a live server
// and prints the book after each step.

const clientID = "TEST_CLIENT"

func main() {
	addr := flag.String("addr", "localhost:5001", "server address")
	instrument := flag.String("instrument", "AAPL", "instrument to trade")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	client := pb.NewTradingEngineClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	submit(ctx, client, *instrument, 1, pb.Side_BUY, 100.0, 1000)
	submit(ctx, client, *instrument, 2, pb.Side_SELL, 100.0, 500)
	printDepth(ctx, client, *instrument)

	modify(ctx, client, 1, 99.0, 500, pb.Side_BUY)
	printDepth(ctx, client, *instrument)

	cancelOrder(ctx, client, 1)
	printDepth(ctx, client, *instrument)
}

func submit(
	ctx context.Context,
	client pb.TradingEngineClient,
	instrument string,
	id uint64,
	side pb.Side,
	price float64,
	qty int64,
) {
	resp, err := client.SubmitOrder(ctx, &pb.OrderRequest{
		OrderId:      id,
		ClientId:     clientID,
		Side:         side,
		Price:        price,
		Quantity:     qty,
		OrderType:    pb.OrderType_GOOD_TILL_CANCEL,
		InstrumentId: instrument,
	})
	if err != nil {
		log.Fatalf("submit %d failed: %v", id, err)
	}

	fmt.Printf("Order %d status: %s\n", id, resp.Status)
	for _, t := range resp.Trades {
		fmt.Printf("  Trade: maker=%d taker=%d price=%.2f qty=%d\n",
			t.MakerOrderId, t.TakerOrderId, t.Price, t.Quantity)
	}
}

func modify(
	ctx context.Context,
	client pb.TradingEngineClient,
	id uint64,
	newPrice float64,
	newQty int64,
	side pb.Side,
) {
	resp, err := client.ModifyOrder(ctx, &pb.ModifyOrderRequest{
		OrderId:     id,
		ClientId:    clientID,
		NewPrice:    newPrice,
		NewQuantity: newQty,
		Side:        side,
	})
	if err != nil {
		log.Fatalf("modify %d failed: %v", id, err)
	}
	fmt.Printf("Modified order %d: %s\n", id, resp.Status)
}

func cancelOrder(ctx context.Context, client pb.TradingEngineClient, id uint64) {
	resp, err := client.CancelOrder(ctx, &pb.CancelOrderRequest{
		OrderId:  id,
		ClientId: clientID,
	})
	if err != nil {
		log.Fatalf("cancel %d failed: %v", id, err)
	}
	fmt.Printf("Cancelled order %d: %v\n", id, resp.Success)
}

func printDepth(ctx context.Context, client pb.TradingEngineClient, instrument string) {
	resp, err := client.GetDepth(ctx, &pb.DepthRequest{
		InstrumentId: instrument,
		Depth:        10,
	})
	if err != nil {
		log.Fatalf("depth failed: %v", err)
	}

	fmt.Println("\nOrderbook:")
	fmt.Println("Asks:")
	for i := len(resp.Asks) - 1; i >= 0; i-- {
		fmt.Printf("  %.2f: %d\n", resp.Asks[i].Price, resp.Asks[i].Quantity)
	}
	fmt.Println("Bids:")
	for _, b := range resp.Bids {
		fmt.Printf("  %.2f: %d\n", b.Price, b.Quantity)
	}
	fmt.Println()
}
