// Package ticketrpc declares the TicketService gRPC contract. Messages are
// plain Go structs carried by a JSON codec instead of generated protobufs.
package ticketrpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ServiceName               = "ticket.v1.TicketService"
	PurchaseTicketsFullMethod = "/" + ServiceName + "/PurchaseTickets"
)

type TicketLine struct {
	Type  string `json:"type"`
	Count int32  `json:"count"`
}

type PurchaseRequest struct {
	AccountId int64        `json:"account_id"`
	Tickets   []TicketLine `json:"tickets"`
}

func (r *PurchaseRequest) GetAccountId() int64 {
	if r == nil {
		return 0
	}
	return r.AccountId
}

func (r *PurchaseRequest) GetTickets() []TicketLine {
	if r == nil {
		return nil
	}
	return r.Tickets
}

type PurchaseResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Reason        string `json:"reason,omitempty"`
	SeatsReserved int32  `json:"seats_reserved,omitempty"`
	AmountCharged int32  `json:"amount_charged,omitempty"`
}

type TicketServiceServer interface {
	PurchaseTickets(context.Context, *PurchaseRequest) (*PurchaseResponse, error)
}

func RegisterTicketServiceServer(s grpc.ServiceRegistrar, srv TicketServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TicketServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PurchaseTickets",
			Handler:    purchaseTicketsHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ticket/v1/ticket_service",
}

func purchaseTicketsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PurchaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TicketServiceServer).PurchaseTickets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PurchaseTicketsFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TicketServiceServer).PurchaseTickets(ctx, req.(*PurchaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) PurchaseTickets(ctx context.Context, in *PurchaseRequest, opts ...grpc.CallOption) (*PurchaseResponse, error) {
	out := new(PurchaseResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PurchaseTicketsFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
