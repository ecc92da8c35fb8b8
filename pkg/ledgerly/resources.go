package ledgerly

// Customer represents a billing customer.
type Customer struct {
	Entity `yaml:",inline"`

	Email                    string            `json:"email,omitempty"                    yaml:"email,omitempty"`
	FirstName                string            `json:"firstName,omitempty"                yaml:"firstName,omitempty"`
	LastName                 string            `json:"lastName,omitempty"                 yaml:"lastName,omitempty"`
	WebsiteID                string            `json:"websiteId,omitempty"                yaml:"websiteId,omitempty"`
	DefaultPaymentInstrument string            `json:"defaultPaymentInstrument,omitempty" yaml:"defaultPaymentInstrument,omitempty"`
	CustomFields             map[string]string `json:"customFields,omitempty"             yaml:"customFields,omitempty"`
}

// ResourceKind implements Resource.
func (c *Customer) ResourceKind() string { return "customer" }

// CustomerRequest is the payload for creating or updating a customer.
type CustomerRequest struct {
	Email        string            `json:"email,omitempty"`
	FirstName    string            `json:"firstName,omitempty"`
	LastName     string            `json:"lastName,omitempty"`
	WebsiteID    string            `json:"websiteId,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
}

// Plan represents a recurring billing plan.
type Plan struct {
	Entity `yaml:",inline"`

	Name             string `json:"name,omitempty"             yaml:"name,omitempty"`
	Currency         string `json:"currency,omitempty"         yaml:"currency,omitempty"`
	Amount           int64  `json:"amount,omitempty"           yaml:"amount,omitempty"`
	IntervalUnit     string `json:"intervalUnit,omitempty"     yaml:"intervalUnit,omitempty"`
	IntervalLength   int    `json:"intervalLength,omitempty"   yaml:"intervalLength,omitempty"`
	TrialPeriodDays  int    `json:"trialPeriodDays,omitempty"  yaml:"trialPeriodDays,omitempty"`
	SetupFee         int64  `json:"setupFee,omitempty"         yaml:"setupFee,omitempty"`
	BillingCyclesCap int    `json:"billingCyclesCap,omitempty" yaml:"billingCyclesCap,omitempty"`
}

// ResourceKind implements Resource.
func (p *Plan) ResourceKind() string { return "plan" }

// PlanRequest is the payload for creating or updating a plan.
type PlanRequest struct {
	Name           string `json:"name,omitempty"`
	Currency       string `json:"currency,omitempty"`
	Amount         int64  `json:"amount,omitempty"`
	IntervalUnit   string `json:"intervalUnit,omitempty"`
	IntervalLength int    `json:"intervalLength,omitempty"`
}

// Subscription represents a customer's subscription to a plan.
type Subscription struct {
	Entity `yaml:",inline"`

	CustomerID      string `json:"customerId,omitempty"      yaml:"customerId,omitempty"`
	PlanID          string `json:"planId,omitempty"          yaml:"planId,omitempty"`
	WebsiteID       string `json:"websiteId,omitempty"       yaml:"websiteId,omitempty"`
	Status          string `json:"status,omitempty"          yaml:"status,omitempty"`
	RenewalTime     string `json:"renewalTime,omitempty"     yaml:"renewalTime,omitempty"`
	CanceledTime    string `json:"canceledTime,omitempty"    yaml:"canceledTime,omitempty"`
	CancelReason    string `json:"cancelReason,omitempty"    yaml:"cancelReason,omitempty"`
	BillingCycle    int    `json:"billingCycle,omitempty"    yaml:"billingCycle,omitempty"`
	AutoRenew       bool   `json:"autoRenew,omitempty"       yaml:"autoRenew,omitempty"`
	QuantityOfUnits int    `json:"quantityOfUnits,omitempty" yaml:"quantityOfUnits,omitempty"`
}

// ResourceKind implements Resource.
func (s *Subscription) ResourceKind() string { return "subscription" }

// SubscriptionRequest is the payload for creating or updating a subscription.
type SubscriptionRequest struct {
	CustomerID      string `json:"customerId,omitempty"`
	PlanID          string `json:"planId,omitempty"`
	WebsiteID       string `json:"websiteId,omitempty"`
	AutoRenew       bool   `json:"autoRenew,omitempty"`
	QuantityOfUnits int    `json:"quantityOfUnits,omitempty"`
}

// SubscriptionCancelRequest is the payload for canceling a subscription.
type SubscriptionCancelRequest struct {
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
	Prorate     bool   `json:"prorate,omitempty"`
}

// Invoice represents a customer invoice.
type Invoice struct {
	Entity `yaml:",inline"`

	CustomerID     string `json:"customerId,omitempty"     yaml:"customerId,omitempty"`
	SubscriptionID string `json:"subscriptionId,omitempty" yaml:"subscriptionId,omitempty"`
	Status         string `json:"status,omitempty"         yaml:"status,omitempty"`
	Currency       string `json:"currency,omitempty"       yaml:"currency,omitempty"`
	Amount         int64  `json:"amount,omitempty"         yaml:"amount,omitempty"`
	AmountDue      int64  `json:"amountDue,omitempty"      yaml:"amountDue,omitempty"`
	DueTime        string `json:"dueTime,omitempty"        yaml:"dueTime,omitempty"`
	IssuedTime     string `json:"issuedTime,omitempty"     yaml:"issuedTime,omitempty"`
}

// ResourceKind implements Resource.
func (i *Invoice) ResourceKind() string { return "invoice" }

// InvoiceRequest is the payload for creating or updating an invoice.
type InvoiceRequest struct {
	CustomerID string `json:"customerId,omitempty"`
	WebsiteID  string `json:"websiteId,omitempty"`
	Currency   string `json:"currency,omitempty"`
	DueTime    string `json:"dueTime,omitempty"`
}

// Transaction represents a payment transaction.
type Transaction struct {
	Entity `yaml:",inline"`

	CustomerID        string `json:"customerId,omitempty"        yaml:"customerId,omitempty"`
	InvoiceID         string `json:"invoiceId,omitempty"         yaml:"invoiceId,omitempty"`
	Type              string `json:"type,omitempty"              yaml:"type,omitempty"`
	Status            string `json:"status,omitempty"            yaml:"status,omitempty"`
	Result            string `json:"result,omitempty"            yaml:"result,omitempty"`
	Currency          string `json:"currency,omitempty"          yaml:"currency,omitempty"`
	Amount            int64  `json:"amount,omitempty"            yaml:"amount,omitempty"`
	PaymentInstrument string `json:"paymentInstrument,omitempty" yaml:"paymentInstrument,omitempty"`
	GatewayName       string `json:"gatewayName,omitempty"       yaml:"gatewayName,omitempty"`
}

// ResourceKind implements Resource.
func (t *Transaction) ResourceKind() string { return "transaction" }

// TransactionRequest is the payload for creating a transaction.
type TransactionRequest struct {
	CustomerID        string `json:"customerId,omitempty"`
	WebsiteID         string `json:"websiteId,omitempty"`
	Type              string `json:"type,omitempty"`
	Currency          string `json:"currency,omitempty"`
	Amount            int64  `json:"amount,omitempty"`
	PaymentInstrument string `json:"paymentInstrument,omitempty"`
}

// BankAccount represents a customer's bank account payment instrument.
type BankAccount struct {
	Entity `yaml:",inline"`

	CustomerID    string `json:"customerId,omitempty"    yaml:"customerId,omitempty"`
	BankName      string `json:"bankName,omitempty"      yaml:"bankName,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty" yaml:"routingNumber,omitempty"`
	AccountType   string `json:"accountType,omitempty"   yaml:"accountType,omitempty"`
	Last4         string `json:"last4,omitempty"         yaml:"last4,omitempty"`
	Status        string `json:"status,omitempty"        yaml:"status,omitempty"`
}

// ResourceKind implements Resource.
func (b *BankAccount) ResourceKind() string { return "bank-account" }

// BankAccountRequest is the payload for creating or updating a bank account.
type BankAccountRequest struct {
	CustomerID    string `json:"customerId,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AccountType   string `json:"accountType,omitempty"`
}

// PaymentCard represents a customer's card payment instrument.
type PaymentCard struct {
	Entity `yaml:",inline"`

	CustomerID string `json:"customerId,omitempty" yaml:"customerId,omitempty"`
	Brand      string `json:"brand,omitempty"      yaml:"brand,omitempty"`
	Last4      string `json:"last4,omitempty"      yaml:"last4,omitempty"`
	ExpMonth   int    `json:"expMonth,omitempty"   yaml:"expMonth,omitempty"`
	ExpYear    int    `json:"expYear,omitempty"    yaml:"expYear,omitempty"`
	Status     string `json:"status,omitempty"     yaml:"status,omitempty"`
}

// ResourceKind implements Resource.
func (p *PaymentCard) ResourceKind() string { return "payment-card" }

// PaymentCardRequest is the payload for creating or updating a payment card.
type PaymentCardRequest struct {
	CustomerID string `json:"customerId,omitempty"`
	PAN        string `json:"pan,omitempty"`
	ExpMonth   int    `json:"expMonth,omitempty"`
	ExpYear    int    `json:"expYear,omitempty"`
	CVV        string `json:"cvv,omitempty"`
}

// Website represents a merchant website registered with the platform.
type Website struct {
	Entity `yaml:",inline"`

	Name         string `json:"name,omitempty"         yaml:"name,omitempty"`
	URL          string `json:"url,omitempty"          yaml:"url,omitempty"`
	ServicePhone string `json:"servicePhone,omitempty" yaml:"servicePhone,omitempty"`
	ServiceEmail string `json:"serviceEmail,omitempty" yaml:"serviceEmail,omitempty"`
}

// ResourceKind implements Resource.
func (w *Website) ResourceKind() string { return "website" }

// WebsiteRequest is the payload for creating or updating a website.
type WebsiteRequest struct {
	Name         string `json:"name,omitempty"`
	URL          string `json:"url,omitempty"`
	ServicePhone string `json:"servicePhone,omitempty"`
	ServiceEmail string `json:"serviceEmail,omitempty"`
}
