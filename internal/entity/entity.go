// Package entity defines the domain records mirrored from the remote store.
package entity

// Role of an authenticated profile.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Profile is the stored record backing an authenticated identity.
type Profile struct {
	ID      string `firestore:"id"`
	Name    string `firestore:"name"`
	Surname string `firestore:"surname"`
	Email   string `firestore:"email"`
	Role    Role   `firestore:"role"`
}

// Product is a catalog item.
type Product struct {
	ID          string   `firestore:"id"`
	Name        string   `firestore:"name"`
	Category    string   `firestore:"category"`
	Price       float64  `firestore:"price"`
	Stock       int      `firestore:"stock"`
	Description string   `firestore:"description"`
	Images      []string `firestore:"images"`
	Visible     bool     `firestore:"isVisible"`
}

// Project is a portfolio item with before/after imagery.
type Project struct {
	ID               string   `firestore:"id"`
	Title            string   `firestore:"title"`
	Description      string   `firestore:"description"`
	ShortDescription string   `firestore:"shortDescription"`
	BeforeImage      string   `firestore:"beforeImage"`
	AfterImage       string   `firestore:"afterImage"`
	Tags             []string `firestore:"tags"`
	Visible          bool     `firestore:"isVisible"`
	Featured         bool     `firestore:"isFeatured"`
}

// MaxFeaturedProjects caps how many projects may be featured at once.
const MaxFeaturedProjects = 5

// RequestStatus of a service request. Transitions are deliberately
// unrestricted; pending/contacted/completed may move in any direction.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestContacted RequestStatus = "contacted"
	RequestCompleted RequestStatus = "completed"
)

// ServiceRequest is a public contact-form submission.
type ServiceRequest struct {
	ID          string        `firestore:"id"`
	ClientName  string        `firestore:"clientName"`
	PhoneNumber string        `firestore:"phoneNumber"`
	HasWhatsapp bool          `firestore:"hasWhatsapp"`
	Zone        string        `firestore:"zone"`
	ServiceType string        `firestore:"serviceType"`
	Description string        `firestore:"description"`
	Date        string        `firestore:"date"`
	Status      RequestStatus `firestore:"status"`
}

// LogStatus of a client ledger entry.
type LogStatus string

const (
	LogPending LogStatus = "pending"
	LogPaid    LogStatus = "paid"
)

// ClientLog is one ledger entry owned by its parent Client. Hours is
// informational only; Amount may be zero or negative (adjustments).
type ClientLog struct {
	ID          string    `firestore:"id"`
	Date        string    `firestore:"date"`
	Description string    `firestore:"description"`
	Hours       float64   `firestore:"hours"`
	Amount      float64   `firestore:"amount"`
	Status      LogStatus `firestore:"status"`
}

// Client is a CRM record. TotalEarnings is a derived aggregate and must
// always equal the sum of Amount over logs with status paid.
type Client struct {
	ID            string      `firestore:"id"`
	Name          string      `firestore:"name"`
	Address       string      `firestore:"address"`
	Zone          string      `firestore:"zone"`
	UsualService  string      `firestore:"usualService"`
	IsRegular     bool        `firestore:"isRegular"`
	LastPrice     float64     `firestore:"lastPrice"`
	Logs          []ClientLog `firestore:"logs"`
	TotalEarnings float64     `firestore:"totalEarnings"`
}

// AppointmentStatus of a calendar appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment lives independently of Client; ClientName is denormalized
// for display. Date is YYYY-MM-DD, Time is HH:MM.
type Appointment struct {
	ID          string            `firestore:"id"`
	ClientID    string            `firestore:"clientId"`
	ClientName  string            `firestore:"clientName"`
	Date        string            `firestore:"date"`
	Time        string            `firestore:"time"`
	Description string            `firestore:"description"`
	Status      AppointmentStatus `firestore:"status"`
}

// CartItem is a product snapshot plus quantity. It is client-local state
// and never part of the remote mirror.
type CartItem struct {
	Product  Product `firestore:"product"`
	Quantity int     `firestore:"quantity"`
}

// SaleStatus of a recorded sale.
type SaleStatus string

const (
	SalePendingPayment SaleStatus = "pending_payment"
	SaleCompleted      SaleStatus = "completed"
)

// Sale is an immutable snapshot of a checkout. Items carry the product
// state at the time of sale; later catalog edits must not alter it.
type Sale struct {
	ID            string     `firestore:"id"`
	Date          string     `firestore:"date"`
	CustomerName  string     `firestore:"customerName"`
	CustomerEmail string     `firestore:"customerEmail"`
	CustomerPhone string     `firestore:"customerPhone"`
	Items         []CartItem `firestore:"items"`
	Total         float64    `firestore:"total"`
	Status        SaleStatus `firestore:"status"`
}

// PaymentConfig is the transfer alias shown at checkout.
type PaymentConfig struct {
	Alias      string `firestore:"alias"`
	HolderName string `firestore:"holderName"`
}

// SiteConfig is the config/general singleton document.
type SiteConfig struct {
	PaymentConfig PaymentConfig `firestore:"paymentConfig"`
	HeroImages    []string      `firestore:"heroImages"`
	ShopEnabled   bool          `firestore:"isShopEnabled"`
}

// CategoryList is the config/categories singleton document.
type CategoryList struct {
	List []string `firestore:"list"`
}
