package assistant

import "context"

type Client interface {
	Reply(ctx context.Context, message string) (string, error)
}
