package entities

// ResponseCode is the output_ResponseCode value returned by M-Pesa.
type ResponseCode string

const (
	CodeSuccess                     ResponseCode = "INS-0"
	CodeInternalError               ResponseCode = "INS-1"
	CodeInvalidAPIKey               ResponseCode = "INS-2"
	CodeUserNotActive               ResponseCode = "INS-4"
	CodeTransactionCancelled        ResponseCode = "INS-5"
	CodeTransactionFailed           ResponseCode = "INS-6"
	CodeRequestTimeout              ResponseCode = "INS-9"
	CodeDuplicateTransaction        ResponseCode = "INS-10"
	CodeInvalidShortcode            ResponseCode = "INS-13"
	CodeInvalidReference            ResponseCode = "INS-14"
	CodeInvalidAmount               ResponseCode = "INS-15"
	CodeUnableToHandleRequest       ResponseCode = "INS-16"
	CodeInvalidTransactionReference ResponseCode = "INS-17"
	CodeInvalidTransactionID        ResponseCode = "INS-18"
	CodeInvalidThirdPartyReference  ResponseCode = "INS-19"
	CodeMissingParameters           ResponseCode = "INS-20"
	CodeParameterValidationFailure  ResponseCode = "INS-21"
	CodeInvalidOperationType        ResponseCode = "INS-22"
	CodeUnknownStatus               ResponseCode = "INS-23"
	CodeInvalidInitiatorIdentifier  ResponseCode = "INS-24"
	CodeInvalidSecurityCredential   ResponseCode = "INS-25"
	CodeNotAuthorized               ResponseCode = "INS-26"
	CodeMissingDirectDebit          ResponseCode = "INS-993"
	CodeDuplicateDirectDebit        ResponseCode = "INS-994"
	CodeCustomerProfileIssues       ResponseCode = "INS-995"
	CodeInactiveCustomerAccount     ResponseCode = "INS-996"
	CodeLinkedTransactionNotFound   ResponseCode = "INS-997"
	CodeInvalidMarket               ResponseCode = "INS-998"
	CodeAuthenticationError         ResponseCode = "INS-2001"
	CodeInvalidRecipient            ResponseCode = "INS-2002"
	CodeInsufficientBalance         ResponseCode = "INS-2006"
	CodeInvalidMSISDN               ResponseCode = "INS-2051"
	CodeInvalidLanguageCode         ResponseCode = "INS-2057"
)

// Severity groups outcomes by what a caller can do about them.
type Severity string

const (
	SeveritySuccess     Severity = "success"
	SeverityRetryable   Severity = "retryable-caller-error"
	SeverityPermanent   Severity = "permanent-caller-error"
	SeverityServerError Severity = "server-error"
	SeverityUnknown     Severity = "unknown"
)

// Outcome describes one vendor response code.
//
// Status is the HTTP-like prefix used in messages, copied from the vendor
// documentation; it is not the transport status. Zero means no prefix.
type Outcome struct {
	Code     ResponseCode
	Name     string
	Status   int
	Label    string
	Severity Severity
	// Escalate marks outcomes that must reach the operator, not just the caller.
	Escalate bool
}

var outcomes = map[ResponseCode]Outcome{
	CodeSuccess:                     {CodeSuccess, "SUCCESS", 200, "Request processed successfully", SeveritySuccess, false},
	CodeInternalError:               {CodeInternalError, "INTERNAL_ERROR", 500, "Internal Error", SeverityServerError, false},
	CodeInvalidAPIKey:               {CodeInvalidAPIKey, "INVALID_API_KEY", 401, "Invalid API Key", SeverityPermanent, false},
	CodeUserNotActive:               {CodeUserNotActive, "USER_NOT_ACTIVE", 401, "User is not active", SeverityPermanent, false},
	CodeTransactionCancelled:        {CodeTransactionCancelled, "TRANSACTION_CANCELLED", 401, "Transaction cancelled by customer", SeverityRetryable, false},
	CodeTransactionFailed:           {CodeTransactionFailed, "TRANSACTION_FAILED", 401, "Transaction Failed", SeverityRetryable, false},
	CodeRequestTimeout:              {CodeRequestTimeout, "REQUEST_TIMEOUT", 408, "Request timeout", SeverityRetryable, false},
	CodeDuplicateTransaction:        {CodeDuplicateTransaction, "DUPLICATE_TRANSACTION", 409, "Duplicate Transaction", SeverityPermanent, false},
	CodeInvalidShortcode:            {CodeInvalidShortcode, "INVALID_SHORTCODE", 400, "Invalid Shortcode", SeverityPermanent, false},
	CodeInvalidReference:            {CodeInvalidReference, "INVALID_REFERENCE", 400, "Invalid Reference", SeverityPermanent, false},
	CodeInvalidAmount:               {CodeInvalidAmount, "INVALID_AMOUNT", 400, "Invalid Amount", SeverityPermanent, false},
	CodeUnableToHandleRequest:       {CodeUnableToHandleRequest, "UNABLE_TO_HANDLE_REQUEST", 0, "Unable to handle the request due to", SeverityServerError, false},
	CodeInvalidTransactionReference: {CodeInvalidTransactionReference, "INVALID_TRANSACTION_REFERENCE", 400, "Invalid Transaction Reference", SeverityPermanent, false},
	CodeInvalidTransactionID:        {CodeInvalidTransactionID, "INVALID_TRANSACTION_ID", 400, "Invalid Transaction ID", SeverityPermanent, false},
	CodeInvalidThirdPartyReference:  {CodeInvalidThirdPartyReference, "INVALID_THIRD_PARTY_REFERENCE", 400, "Invalid Third Party Reference", SeverityPermanent, false},
	CodeMissingParameters:           {CodeMissingParameters, "MISSING_PARAMETERS", 400, "Missing Parameters", SeverityPermanent, false},
	CodeParameterValidationFailure:  {CodeParameterValidationFailure, "PARAMETER_VALIDATION_FAILURE", 400, "Parameter Validation Failure", SeverityPermanent, false},
	CodeInvalidOperationType:        {CodeInvalidOperationType, "INVALID_OPERATION_TYPE", 400, "Invalid Operation Type", SeverityPermanent, false},
	CodeUnknownStatus:               {CodeUnknownStatus, "UNKNOWN_STATUS", 400, "Unknown Status", SeverityUnknown, false},
	CodeInvalidInitiatorIdentifier:  {CodeInvalidInitiatorIdentifier, "INVALID_INITIATOR_IDENTIFIER", 400, "Invalid Initiator Identifier", SeverityPermanent, false},
	CodeInvalidSecurityCredential:   {CodeInvalidSecurityCredential, "INVALID_SECURITY_CREDENTIAL", 400, "Invalid Security Credential", SeverityPermanent, false},
	CodeNotAuthorized:               {CodeNotAuthorized, "NOT_AUTHORIZED", 400, "Not Authorized", SeverityPermanent, false},
	CodeMissingDirectDebit:          {CodeMissingDirectDebit, "MISSING_DIRECT_DEBIT", 400, "Missing Direct Debit", SeverityPermanent, true},
	CodeDuplicateDirectDebit:        {CodeDuplicateDirectDebit, "DUPLICATE_DIRECT_DEBIT", 400, "Duplicate Direct Debit", SeverityPermanent, false},
	CodeCustomerProfileIssues:       {CodeCustomerProfileIssues, "CUSTOMER_PROFILE_ISSUES", 400, "Customer Profile Issues", SeverityPermanent, false},
	CodeInactiveCustomerAccount:     {CodeInactiveCustomerAccount, "INACTIVE_CUSTOMER_ACCOUNT", 400, "Inactive Customer Account", SeverityPermanent, false},
	CodeLinkedTransactionNotFound:   {CodeLinkedTransactionNotFound, "LINKED_TRANSACTION_NOT_FOUND", 400, "Linked Transaction Not Found", SeverityPermanent, false},
	CodeInvalidMarket:               {CodeInvalidMarket, "INVALID_MARKET", 400, "Invalid Market", SeverityPermanent, false},
	CodeAuthenticationError:         {CodeAuthenticationError, "AUTHENTICATION_ERROR", 400, "Authentication Error", SeverityPermanent, false},
	CodeInvalidRecipient:            {CodeInvalidRecipient, "INVALID_RECIPIENT", 400, "Invalid Recipient", SeverityPermanent, false},
	CodeInsufficientBalance:         {CodeInsufficientBalance, "INSUFFICIENT_BALANCE", 400, "Insufficient Balance", SeverityRetryable, false},
	CodeInvalidMSISDN:               {CodeInvalidMSISDN, "INVALID_MSISDN", 400, "Invalid MSISDN", SeverityPermanent, false},
	CodeInvalidLanguageCode:         {CodeInvalidLanguageCode, "INVALID_LANGUAGE_CODE", 400, "Invalid Language Code", SeverityPermanent, false},
}

// LookupOutcome returns the descriptor for code. Unrecognized codes yield an
// Outcome with SeverityUnknown and ok=false.
func LookupOutcome(code ResponseCode) (Outcome, bool) {
	o, ok := outcomes[code]
	if !ok {
		return Outcome{Code: code, Name: "UNRECOGNIZED", Status: 400, Severity: SeverityUnknown}, false
	}
	return o, true
}

// KnownOutcomes returns a copy of the table, mostly for tests and docs.
func KnownOutcomes() []Outcome {
	out := make([]Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, o)
	}
	return out
}
