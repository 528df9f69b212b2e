package dto

// User-facing message catalog. These strings are part of the API contract;
// clients branch on them, so they are never rephrased.
const (
	MsgUserCreated         = "Successfully User created."
	MsgUserLogin           = "Successfully User Login"
	MsgUserAlreadyExist    = "User Already Exist"
	MsgUserNotFound        = "User Not Found"
	MsgInvalidCredential   = "Invalid credential"
	MsgUserFetched         = "User successfully fetched."
	MsgUserUpdated         = "User successfully updated."
	MsgUserDeleted         = "User successfully deleted."
	MsgAccessNotAllowed    = "Access Not Allowed"
	MsgUpdateNotAllowed    = "Update Not Allowed"
	MsgDeleteNotAllowed    = "Delete Not Allowed"
	MsgTokenMissing        = "Token Is Missing"
	MsgInvalidToken        = "Invalid Token"
	MsgInternalServerError = "An internal server error occurred"
)
