package clients

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jardinverde/gardenia/internal/entity"
	crmsvc "github.com/jardinverde/gardenia/internal/service/crm"
	"github.com/jardinverde/gardenia/internal/session"
)

// Register registers client and work-ledger endpoints.
func Register(api huma.API, svc *crmsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-clients",
		Method:      http.MethodGet,
		Path:        "/clients",
		Summary:     "List clients",
		Tags:        []string{"Clients"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *struct{}) (*ListOutput, error) {
		out := &ListOutput{}
		out.Body.Clients = toHTTPClients(svc.List())
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-pending-logs",
		Method:      http.MethodGet,
		Path:        "/clients/pending-logs",
		Summary:     "List unpaid work logs",
		Description: "Flattens every unpaid ledger entry across clients, oldest first.",
		Tags:        []string{"Clients"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *struct{}) (*PendingOutput, error) {
		out := &PendingOutput{}
		out.Body.Pending = toHTTPPending(svc.PendingAgenda())
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-client",
		Method:      http.MethodGet,
		Path:        "/clients/{id}",
		Summary:     "Get client",
		Tags:        []string{"Clients"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *GetInput) (*ClientOutput, error) {
		c, err := svc.Get(input.ID)
		if err != nil {
			return nil, mapClientError(err)
		}
		return &ClientOutput{Body: toHTTPClient(c)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-client",
		Method:        http.MethodPost,
		Path:          "/clients",
		Summary:       "Create client",
		Tags:          []string{"Clients"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *CreateInput) (*ClientOutput, error) {
		c, err := svc.Add(ctx, session.FromContext(ctx), clientParams(input.Body))
		if err != nil {
			return nil, mapClientError(err)
		}
		return &ClientOutput{Body: toHTTPClient(c)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-client",
		Method:      http.MethodPut,
		Path:        "/clients/{id}",
		Summary:     "Update client",
		Description: "Updates contact fields. The work ledger and earnings total are preserved.",
		Tags:        []string{"Clients"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *UpdateInput) (*ClientOutput, error) {
		c, err := svc.Update(ctx, session.FromContext(ctx), input.ID, clientParams(input.Body))
		if err != nil {
			return nil, mapClientError(err)
		}
		return &ClientOutput{Body: toHTTPClient(c)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-client",
		Method:        http.MethodDelete,
		Path:          "/clients/{id}",
		Summary:       "Delete client",
		Tags:          []string{"Clients"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *DeleteInput) (*struct{}, error) {
		if err := svc.Delete(ctx, session.FromContext(ctx), input.ID); err != nil {
			return nil, mapClientError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "add-client-log",
		Method:        http.MethodPost,
		Path:          "/clients/{id}/logs",
		Summary:       "Append a work log",
		Description:   "Appends a ledger entry. A paid entry is added to the client's earnings total.",
		Tags:          []string{"Clients"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *AddLogInput) (*LogOutput, error) {
		status := entity.LogStatus(input.Body.Status)
		if status == "" {
			status = entity.LogPending
		}
		log, err := svc.AddLog(ctx, session.FromContext(ctx), input.ID, crmsvc.LogParams{
			Date:        input.Body.Date,
			Description: input.Body.Description,
			Hours:       input.Body.Hours,
			Amount:      input.Body.Amount,
			Status:      status,
		})
		if err != nil {
			return nil, mapClientError(err)
		}
		return &LogOutput{Body: toHTTPLog(log)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "set-client-log-status",
		Method:        http.MethodPut,
		Path:          "/clients/{id}/logs/{logId}/status",
		Summary:       "Change a work log's payment status",
		Description:   "Marks a ledger entry paid or pending, adjusting the earnings total by the entry amount.",
		Tags:          []string{"Clients"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *LogStatusInput) (*struct{}, error) {
		err := svc.SetLogStatus(ctx, session.FromContext(ctx), input.ID, input.LogID,
			entity.LogStatus(input.Body.Status))
		if err != nil {
			return nil, mapClientError(err)
		}
		return nil, nil
	})
}

func clientParams(b ClientBody) crmsvc.ClientParams {
	return crmsvc.ClientParams{
		Name:         b.Name,
		Address:      b.Address,
		Zone:         b.Zone,
		UsualService: b.UsualService,
		IsRegular:    b.IsRegular,
		LastPrice:    b.LastPrice,
	}
}

func mapClientError(err error) error {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return huma.Error401Unauthorized("sign-in required")
	case errors.Is(err, crmsvc.ErrClientNotFound):
		return huma.Error404NotFound("client not found")
	case errors.Is(err, crmsvc.ErrLogNotFound):
		return huma.Error404NotFound("work log not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
