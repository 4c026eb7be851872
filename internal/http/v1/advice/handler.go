package advice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	advicesvc "github.com/jardinverde/gardenia/internal/service/advice"
	catalogsvc "github.com/jardinverde/gardenia/internal/service/catalog"
)

// AskInput for POST /advice
type AskInput struct {
	Body struct {
		Query string `json:"query" minLength:"1" maxLength:"2000" required:"true" doc:"Gardening question" example:"Mi monstera tiene hojas amarillas"`
	}
}

// AskOutput for POST /advice
type AskOutput struct {
	Body struct {
		Reply string `json:"reply" doc:"Assistant reply"`
	}
}

// Register registers the gardening-advice endpoint. The assistant only
// ever sees the storefront's visible products.
func Register(api huma.API, svc advicesvc.Service, catalog *catalogsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "ask-advice",
		Method:      http.MethodPost,
		Path:        "/advice",
		Summary:     "Ask the gardening assistant",
		Tags:        []string{"Advice"},
	}, func(ctx context.Context, input *AskInput) (*AskOutput, error) {
		out := &AskOutput{}
		out.Body.Reply = svc.Ask(ctx, input.Body.Query, catalog.VisibleProducts())
		return out, nil
	})
}
