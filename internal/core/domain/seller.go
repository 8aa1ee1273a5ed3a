package domain

// SellerDeactivationWarning accompanies every successful deactivation.
const SellerDeactivationWarning = "seller will no longer be visible to customers at checkout"

// Country is the nested country object of a user.
type Country struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// EligibleSeller is a user that may be toggled as a wallet seller.
type EligibleSeller struct {
	UserRef
	IsWalletSeller       bool     `json:"is_wallet_seller"`
	WalletSellerWhatsApp string   `json:"wallet_seller_whatsapp"`
	Phone                string   `json:"phone,omitempty"`
	City                 string   `json:"city,omitempty"`
	Country              *Country `json:"country,omitempty"`
}

// SellerUpdate is the payload sent to the backend for any seller state change.
type SellerUpdate struct {
	UserID         int64  `json:"user_id"`
	IsWalletSeller bool   `json:"is_wallet_seller"`
	WhatsApp       string `json:"wallet_seller_whatsapp"`
}

// SellerChange is the outcome of an activation, deactivation or contact edit.
type SellerChange struct {
	UserID         int64  `json:"user_id"`
	IsWalletSeller bool   `json:"is_wallet_seller"`
	WhatsApp       string `json:"wallet_seller_whatsapp"`
	Warning        string `json:"warning,omitempty"`
}
