package booking

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Slots(ctx context.Context, input SlotsInput) (SlotsOutput, error)
	Book(ctx context.Context, input BookInput) (BookOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Invitation(ctx context.Context, id string) ([]byte, error)
}
