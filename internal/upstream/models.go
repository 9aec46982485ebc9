package upstream

// DTOs mirror the Magic Call API response shapes one-to-one.
//
// Timestamps stay strings: the API serializes LocalDateTime without a zone
// offset, and the console never computes with dates, it only displays them.
// Derived business state (balances, expiry) is likewise never computed here.

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token     string   `json:"token"`
	Username  string   `json:"username"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"createdAt"`
	Message   string   `json:"message"`
}

type User struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Enabled   bool     `json:"enabled"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type UpdateUserRequest struct {
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Enabled   *bool    `json:"enabled,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

type VoiceType struct {
	ID        int64  `json:"id"`
	VoiceName string `json:"voiceName"`
	Code      string `json:"code"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type VoiceTypeRequest struct {
	VoiceName string `json:"voiceName"`
	Code      string `json:"code"`
}

type Package struct {
	ID          int64       `json:"id"`
	PackageName string      `json:"packageName"`
	Duration    int64       `json:"duration"`
	VoiceTypes  []VoiceType `json:"voiceTypes"`
	CreatedDate string      `json:"createdDate"`
	ExpireDate  string      `json:"expireDate"`
	Price       float64     `json:"price"`
	VAT         float64     `json:"vat"`
	TotalAmount float64     `json:"totalAmount"`
}

type PackageRequest struct {
	PackageName  string  `json:"packageName"`
	Duration     int64   `json:"duration"`
	VoiceTypeIDs []int64 `json:"voiceTypeIds"`
	ExpireDate   string  `json:"expireDate,omitempty"`
	Price        float64 `json:"price"`
	VAT          float64 `json:"vat"`
}

// PackagePurchase is a completed package purchase (read-only for admins).
type PackagePurchase struct {
	ID                int64   `json:"id"`
	PurchaseDate      string  `json:"purchaseDate"`
	PurchaseAmount    float64 `json:"purchaseAmount"`
	PackageID         int64   `json:"packageId"`
	PackageName       string  `json:"packageName"`
	Duration          int64   `json:"duration"`
	TransactionID     string  `json:"transactionId"`
	TransactionStatus string  `json:"transactionStatus"`
	UserID            int64   `json:"userId"`
	Username          string  `json:"username"`
}

// TopUp is a balance-recharge transaction. Status transitions
// (pending -> success/failed) happen only via admin approve/reject.
type TopUp struct {
	ID                int64   `json:"id"`
	IDUser            int64   `json:"idUser"`
	TransactionMethod string  `json:"transactionMethod"`
	Amount            float64 `json:"amount"`
	TnxID             string  `json:"tnxId"`
	Date              string  `json:"date"`
	Status            string  `json:"status"`
	UpdatedAt         string  `json:"updatedAt"`
	DurationInSeconds int64   `json:"durationInSeconds"`
	User              *User   `json:"user,omitempty"`
}

// VoicePurchase is a voice-effect subscription request awaiting admin review.
type VoicePurchase struct {
	ID                int64      `json:"id"`
	IDUser            int64      `json:"idUser"`
	IDVoiceType       int64      `json:"idVoiceType"`
	IDTransaction     *int64     `json:"idTransaction"`
	TransactionMethod string     `json:"transactionMethod"`
	TnxID             string     `json:"tnxId"`
	SubscriptionType  string     `json:"subscriptionType"`
	Amount            float64    `json:"amount"`
	PurchaseDate      string     `json:"purchaseDate"`
	ExpiryDate        string     `json:"expiryDate"`
	Status            string     `json:"status"`
	UpdatedAt         string     `json:"updatedAt"`
	VoiceType         *VoiceType `json:"voiceType,omitempty"`
	User              *User      `json:"user,omitempty"`
}

type Balance struct {
	ID              int64   `json:"id"`
	PurchaseAmount  float64 `json:"purchaseAmount"`
	LastUsedAmount  float64 `json:"lastUsedAmount"`
	TotalUsedAmount float64 `json:"totalUsedAmount"`
	RemainAmount    float64 `json:"remainAmount"`
	IDUser          int64   `json:"idUser"`
}

type CallHistory struct {
	ID          int64  `json:"id"`
	Aparty      string `json:"aparty"`
	Bparty      string `json:"bparty"`
	UUID        string `json:"uuid"`
	SourceIP    string `json:"sourceIp"`
	CreateTime  string `json:"createTime"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Duration    int64  `json:"duration"`
	Status      string `json:"status"`
	HangupCause string `json:"hangupCause"`
	Codec       string `json:"codec"`
	IDUser      *int64 `json:"idUser"`
	User        *User  `json:"user,omitempty"`
}

// ExpiredVoice is an audit record of a voice mapping removed by the
// upstream expiry cleanup job.
type ExpiredVoice struct {
	ID                int64      `json:"id"`
	OriginalMappingID int64      `json:"originalMappingId"`
	IDUser            int64      `json:"idUser"`
	IDVoiceType       int64      `json:"idVoiceType"`
	IsPurchased       bool       `json:"isPurchased"`
	AssignedAt        string     `json:"assignedAt"`
	TrialExpiryDate   string     `json:"trialExpiryDate"`
	ExpiryDate        string     `json:"expiryDate"`
	IsDefault         bool       `json:"isDefault"`
	ExpiredAt         string     `json:"expiredAt"`
	ExpiryReason      string     `json:"expiryReason"`
	CreatedAt         string     `json:"createdAt"`
	User              *User      `json:"user,omitempty"`
	VoiceType         *VoiceType `json:"voiceType,omitempty"`
}

type DashboardStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalVoiceTypes  int64 `json:"totalVoiceTypes"`
	TotalTopUps      int64 `json:"totalTopUps"`
	TotalCallHistory int64 `json:"totalCallHistory"`
}
