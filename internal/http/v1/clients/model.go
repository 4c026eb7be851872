package clients

import (
	"github.com/jardinverde/gardenia/internal/entity"
	crmsvc "github.com/jardinverde/gardenia/internal/service/crm"
)

// WorkLog represents one ledger entry in responses.
type WorkLog struct {
	ID          string  `json:"id"          doc:"Log identifier"`
	Date        string  `json:"date"        doc:"Work date"`
	Description string  `json:"description" doc:"Work performed"`
	Hours       float64 `json:"hours"       doc:"Hours worked"`
	Amount      float64 `json:"amount"      doc:"Amount charged"`
	Status      string  `json:"status"      doc:"Payment status" enum:"pending,paid"`
}

// Client represents a client record in responses.
type Client struct {
	ID            string    `json:"id"            doc:"Client identifier"`
	Name          string    `json:"name"          doc:"Client name"`
	Address       string    `json:"address"       doc:"Street address"`
	Zone          string    `json:"zone"          doc:"Neighborhood or zone"`
	UsualService  string    `json:"usualService"  doc:"Service typically performed"`
	IsRegular     bool      `json:"isRegular"     doc:"Recurring client"`
	LastPrice     float64   `json:"lastPrice"     doc:"Most recent charge"`
	Logs          []WorkLog `json:"logs"          doc:"Work ledger, newest first"`
	TotalEarnings float64   `json:"totalEarnings" doc:"Sum of paid ledger amounts"`
}

// PendingLog is a ledger entry awaiting payment, flattened with its
// client's display fields.
type PendingLog struct {
	ClientID   string  `json:"clientId"   doc:"Client identifier"`
	ClientName string  `json:"clientName" doc:"Client name"`
	Zone       string  `json:"zone"       doc:"Neighborhood or zone"`
	Log        WorkLog `json:"log"`
}

func toHTTPLog(l entity.ClientLog) WorkLog {
	return WorkLog{
		ID:          l.ID,
		Date:        l.Date,
		Description: l.Description,
		Hours:       l.Hours,
		Amount:      l.Amount,
		Status:      string(l.Status),
	}
}

func toHTTPClient(c entity.Client) Client {
	logs := make([]WorkLog, 0, len(c.Logs))
	for _, l := range c.Logs {
		logs = append(logs, toHTTPLog(l))
	}
	return Client{
		ID:            c.ID,
		Name:          c.Name,
		Address:       c.Address,
		Zone:          c.Zone,
		UsualService:  c.UsualService,
		IsRegular:     c.IsRegular,
		LastPrice:     c.LastPrice,
		Logs:          logs,
		TotalEarnings: c.TotalEarnings,
	}
}

func toHTTPClients(in []entity.Client) []Client {
	out := make([]Client, 0, len(in))
	for _, c := range in {
		out = append(out, toHTTPClient(c))
	}
	return out
}

func toHTTPPending(in []crmsvc.PendingLog) []PendingLog {
	out := make([]PendingLog, 0, len(in))
	for _, p := range in {
		out = append(out, PendingLog{
			ClientID:   p.ClientID,
			ClientName: p.ClientName,
			Zone:       p.Zone,
			Log:        toHTTPLog(p.Log),
		})
	}
	return out
}
