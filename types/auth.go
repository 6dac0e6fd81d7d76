package types

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User    *UserInfo `json:"user"`
	Access  string    `json:"access"`
	Refresh string    `json:"refresh"`
}

type ConnectPartnerRequest struct {
	PartnerCode string `json:"partner_code"`
}

type ConnectPartnerResponse struct {
	Message string    `json:"message"`
	Partner *UserInfo `json:"partner"`
}
