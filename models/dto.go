package models

// Request bodies mirror what the React pages send. The backend performs no
// field validation beyond JSON type coercion, so none of these carry binding
// rules.

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	UserType  string `json:"userType"`
}

// LoginRequest accepts an email address or a phone number as the identifier.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

type CreateOrderRequest struct {
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	Zip          string      `json:"zip"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Query   string `json:"query"`
	Address string `json:"address"`
}
