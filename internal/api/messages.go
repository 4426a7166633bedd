package api

// Success messages returned in the envelope. The strings are part of the
// wire contract; clients match on them.
const (
	MsgLoginSuccess        = "Logged successfully"
	MsgRegistrationSuccess = "Registration successfully"
	MsgProductAdded        = "Product successfully added"
	MsgProductUpdated      = "Product updated successfully"
	MsgProductDeleted      = "Product deleted successfully"
	MsgProductFound        = "Product found"
	MsgProductsFound       = "Products found"
	MsgCategoryAdded       = "Category added successfully"
	MsgMediaUploaded       = "Media uploaded successfully"
	MsgAPIWorking          = "Api is working"
	MsgAPINotFound         = "Api not found"
)

// Error messages returned in the envelope.
const (
	MsgEmailAlreadyExists = "Email already exists"
	MsgUnauthorized       = "Unauthorized"
	// MsgInvalidCredentials deliberately does not distinguish an unknown
	// email from a wrong password.
	MsgInvalidCredentials = "Invalid username or password."
	MsgInternalError      = "An internal server error occurred. Please try again later."
	MsgTokenExpired       = "Access token is expired"
	MsgInvalidToken       = "Access token is invalid"
	MsgValidationFailed   = "Validation failed for given parameters"
	MsgProductNotFound    = "Product not found"
	MsgNoFilesUploaded    = "No image files uploaded"
	MsgInvalidRequest     = "Invalid request format"
)
