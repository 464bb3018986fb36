package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/ticket-service/internal/adapter/handler/ticketrpc"
)

func main() {
	var (
		addr        string
		account     int64
		tickets     []string
		repeat      int
		concurrency int
		timeout     time.Duration
	)

	pflag.StringVar(&addr, "addr", "localhost:50051", "gRPC address of the ticket server")
	pflag.Int64Var(&account, "account", 0, "account to purchase for")
	pflag.StringArrayVar(&tickets, "ticket", nil, "ticket line as TYPE=COUNT, repeatable (e.g. ADULT=2)")
	pflag.IntVar(&repeat, "repeat", 1, "number of purchases to send")
	pflag.IntVar(&concurrency, "concurrency", 1, "purchases in flight at once")
	pflag.DurationVar(&timeout, "timeout", 5*time.Second, "per-request timeout")
	pflag.Parse()

	lines, err := parseTicketLines(tickets)
	if err != nil {
		logrus.Fatalf("invalid --ticket: %v", err)
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logrus.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close()

	client := ticketrpc.NewClient(conn)
	req := &ticketrpc.PurchaseRequest{AccountId: account, Tickets: lines}

	if repeat <= 1 {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.PurchaseTickets(ctx, req)
		if err != nil {
			logrus.Fatalf("purchase failed: %v", err)
		}
		printResponse(resp)
		if !resp.Success {
			os.Exit(1)
		}
		return
	}

	runLoad(client, req, repeat, concurrency, timeout)
}

// parseTicketLines turns ["ADULT=2", "CHILD=1"] into ticket lines. No flags
// yields an empty, non-nil batch.
func parseTicketLines(args []string) ([]ticketrpc.TicketLine, error) {
	lines := make([]ticketrpc.TicketLine, 0, len(args))
	for _, arg := range args {
		typ, count, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%q: expected TYPE=COUNT", arg)
		}
		n, err := strconv.ParseInt(count, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", arg, err)
		}
		lines = append(lines, ticketrpc.TicketLine{Type: strings.ToUpper(typ), Count: int32(n)})
	}
	return lines, nil
}

func printResponse(resp *ticketrpc.PurchaseResponse) {
	if resp.Success {
		fmt.Printf("OK: %s (seats reserved: %d, amount charged: %d)\n",
			resp.Message, resp.SeatsReserved, resp.AmountCharged)
		return
	}
	fmt.Printf("REJECTED [%s]: %s\n", resp.Reason, resp.Message)
}

func runLoad(client *ticketrpc.Client, req *ticketrpc.PurchaseRequest, repeat, concurrency int, timeout time.Duration) {
	if concurrency < 1 {
		concurrency = 1
	}

	var successCount, rejectCount, errorCount atomic.Int32
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < repeat; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			resp, err := client.PurchaseTickets(ctx, req)
			switch {
			case err != nil:
				errorCount.Add(1)
			case resp.Success:
				successCount.Add(1)
			default:
				rejectCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	fmt.Println("========== PURCHASE LOAD RESULTS ==========")
	fmt.Printf("Total Requests:   %d\n", repeat)
	fmt.Printf("Concurrency:      %d\n", concurrency)
	fmt.Printf("Successful:       %d\n", successCount.Load())
	fmt.Printf("Rejected:         %d\n", rejectCount.Load())
	fmt.Printf("Errors:           %d\n", errorCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("===========================================")

	if errorCount.Load() > 0 {
		os.Exit(1)
	}
}
