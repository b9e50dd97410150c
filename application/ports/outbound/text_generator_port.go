package outbound

import "context"

type TextGeneratorPort interface {
	GenerateTitle(ctx context.Context, summaryText string) (string, error)
	GenerateScript(ctx context.Context, summaryText string) (string, error)
}
