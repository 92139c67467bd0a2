package client

// CreateApplicantRequest is the body of CreateApplicant.
type CreateApplicantRequest struct {
	ExternalUserID string     `json:"externalUserId"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	FixedInfo      *FixedInfo `json:"fixedInfo,omitempty"`
	Type           string     `json:"type,omitempty"` // "individual" or "company"
	Info           *Info      `json:"info,omitempty"`
}

// FixedInfo holds applicant data that the applicant cannot change.
type FixedInfo struct {
	Country      string       `json:"country,omitempty"`
	FirstName    string       `json:"firstName,omitempty"`
	LastName     string       `json:"lastName,omitempty"`
	DOB          string       `json:"dob,omitempty"` // YYYY-MM-DD
	PlaceOfBirth string       `json:"placeOfBirth,omitempty"`
	CompanyInfo  *CompanyInfo `json:"companyInfo,omitempty"`
}

// Info holds applicant data extracted from documents or provided by the applicant.
type Info struct {
	FirstName      string       `json:"firstName,omitempty"`
	LastName       string       `json:"lastName,omitempty"`
	MiddleName     string       `json:"middleName,omitempty"`
	LegalName      string       `json:"legalName,omitempty"`
	Gender         string       `json:"gender,omitempty"`
	DOB            string       `json:"dob,omitempty"`
	PlaceOfBirth   string       `json:"placeOfBirth,omitempty"`
	CountryOfBirth string       `json:"countryOfBirth,omitempty"`
	StateOfBirth   string       `json:"stateOfBirth,omitempty"`
	Country        string       `json:"country,omitempty"`
	Nationality    string       `json:"nationality,omitempty"`
	Addresses      []Address    `json:"addresses,omitempty"`
	TIN            string       `json:"tin,omitempty"`
	CompanyInfo    *CompanyInfo `json:"companyInfo,omitempty"`
}

// Address is a postal address.
type Address struct {
	Country        string `json:"country"`
	PostCode       string `json:"postCode"`
	Town           string `json:"town"`
	Street         string `json:"street"`
	SubStreet      string `json:"subStreet,omitempty"`
	State          string `json:"state,omitempty"`
	BuildingName   string `json:"buildingName,omitempty"`
	FlatNumber     string `json:"flatNumber,omitempty"`
	BuildingNumber string `json:"buildingNumber,omitempty"`
}

// CompanyInfo describes a business applicant.
type CompanyInfo struct {
	CompanyName        string `json:"companyName"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Country            string `json:"country,omitempty"`
	LegalAddress       string `json:"legalAddress,omitempty"`
	IncorporatedOn     string `json:"incorporatedOn,omitempty"`
	Type               string `json:"type,omitempty"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
	TaxID              string `json:"taxId,omitempty"`
	Website            string `json:"website,omitempty"`
}

// Applicant is an applicant as returned by the service.
type Applicant struct {
	ID                string     `json:"id"`
	CreatedAt         string     `json:"createdAt"`
	ClientID          string     `json:"clientId"`
	InspectionID      string     `json:"inspectionId"`
	ExternalUserID    string     `json:"externalUserId"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	ApplicantPlatform string     `json:"applicantPlatform,omitempty"`
	FixedInfo         *FixedInfo `json:"fixedInfo,omitempty"`
	Info              *Info      `json:"info,omitempty"`
	Review            Review     `json:"review"`
	Type              string     `json:"type"`
}

// Review is the review state embedded in an Applicant.
type Review struct {
	ReviewStatus string        `json:"reviewStatus"`
	LevelName    string        `json:"levelName,omitempty"`
	ReviewResult *ReviewResult `json:"reviewResult,omitempty"`
}

// ReviewResult is the outcome of a completed review.
type ReviewResult struct {
	ReviewAnswer      string   `json:"reviewAnswer"`
	RejectType        string   `json:"rejectType,omitempty"`
	ReviewRejectType  string   `json:"reviewRejectType,omitempty"`
	ModerationComment string   `json:"moderationComment,omitempty"`
	ClientComment     string   `json:"clientComment,omitempty"`
	RejectLabels      []string `json:"rejectLabels,omitempty"`
}

// ApplicantStatus is returned by GetApplicantStatus.
type ApplicantStatus struct {
	CreateDate        string        `json:"createDate"`
	ReviewDate        string        `json:"reviewDate,omitempty"`
	StartDate         string        `json:"startDate,omitempty"`
	ReviewResult      *ReviewResult `json:"reviewResult,omitempty"`
	ReviewStatus      string        `json:"reviewStatus"`
	ModerationComment string        `json:"moderationComment,omitempty"`
	ClientComment     string        `json:"clientComment,omitempty"`
	RejectLabels      []string      `json:"rejectLabels,omitempty"`
}

// DocumentMetadata is the "metadata" part of a document upload.
type DocumentMetadata struct {
	IDDocType    string `json:"idDocType"`
	IDDocSubType string `json:"idDocSubType,omitempty"`
	Country      string `json:"country"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Number       string `json:"number,omitempty"`
	IssuedDate   string `json:"issuedDate,omitempty"`
	ValidUntil   string `json:"validUntil,omitempty"`
	DOB          string `json:"dob,omitempty"`
}

// AccessToken is a WebSDK access token.
type AccessToken struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// HealthStatus is returned by GetAPIHealthStatus.
type HealthStatus struct {
	Status string `json:"status"`
}

// Transaction is submitted for monitoring.
type Transaction struct {
	TxnID        string                 `json:"txnId"`
	TxnDate      string                 `json:"txnDate"`
	Type         string                 `json:"type"` // "finance", "kyc", "travelRule", ...
	Applicant    TransactionParty       `json:"applicant"`
	Counterparty *TransactionParty      `json:"counterparty,omitempty"`
	Info         *TransactionInfo       `json:"info,omitempty"`
	Props        map[string]string      `json:"props,omitempty"`
	EventInfo    *UserPlatformEventInfo `json:"userPlatformEventInfo,omitempty"`
}

// TransactionParty is either side of a transaction.
type TransactionParty struct {
	Type           string           `json:"type"` // "individual" or "company"
	ExternalUserID string           `json:"externalUserId"`
	FullName       string           `json:"fullName"`
	PlaceOfBirth   string           `json:"placeOfBirth,omitempty"`
	DOB            string           `json:"dob,omitempty"`
	Address        *Address         `json:"address,omitempty"`
	PaymentMethod  *PaymentMethod   `json:"paymentMethod,omitempty"`
	Institution    *InstitutionInfo `json:"institutionInfo,omitempty"`
}

// TransactionInfo carries amounts and direction.
type TransactionInfo struct {
	Direction       string  `json:"direction"` // "in" or "out"
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currencyCode"`
	CurrencyType    string  `json:"currencyType,omitempty"` // "fiat" or "crypto"
	AmountInDefault float64 `json:"amountInDefaultCurrency,omitempty"`
	PaymentDetails  string  `json:"paymentDetails,omitempty"`
}

// PaymentMethod identifies the account used in a transaction.
type PaymentMethod struct {
	Type           string `json:"type"`
	AccountID      string `json:"accountId"`
	IssuingCountry string `json:"issuingCountry,omitempty"`
}

// InstitutionInfo identifies a financial institution.
type InstitutionInfo struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// UserPlatformEventInfo carries non-financial event data.
type UserPlatformEventInfo struct {
	Type string `json:"type,omitempty"`
}

// TransactionResult is returned by SubmitTransaction.
type TransactionResult struct {
	ID          string             `json:"id"`
	CreatedAt   string             `json:"createdAt"`
	ClientID    string             `json:"clientId"`
	ApplicantID string             `json:"applicantId"`
	Review      *TransactionReview `json:"review,omitempty"`
	Score       *ScoringResult     `json:"scoringResult,omitempty"`
}

// TransactionReview is the review state of a transaction.
type TransactionReview struct {
	ReviewID     string        `json:"reviewId"`
	AttemptID    string        `json:"attemptId"`
	AttemptCnt   int           `json:"attemptCnt"`
	LevelName    string        `json:"levelName"`
	CreateDate   string        `json:"createDate"`
	ReviewStatus string        `json:"reviewStatus"`
	ReviewResult *ReviewResult `json:"reviewResult,omitempty"`
}

// ScoringResult is the rule engine outcome of a transaction.
type ScoringResult struct {
	Score  float64 `json:"score"`
	Action string  `json:"action"`
}

// BulkTransaction is one line of a bulk import.
type BulkTransaction struct {
	ApplicantID string      `json:"applicantId,omitempty"`
	Data        Transaction `json:"data"`
}

// BulkImportResult is returned by BulkTransactionImport.
type BulkImportResult struct {
	CreatedCnt int `json:"createdCnt"`
}

// DeleteResult is returned by DeleteTransaction.
type DeleteResult struct {
	Deleted int `json:"deleted"`
}

// WalletAddress is one line of ImportWalletAddresses.
type WalletAddress struct {
	Address  string `json:"address"`
	Currency string `json:"currency"`
	Network  string `json:"network"`
}

// WalletImportResult is returned by ImportWalletAddresses.
type WalletImportResult struct {
	Imported    int `json:"imported"`
	NotImported int `json:"notImported"`
	Failed      int `json:"failed"`
}
