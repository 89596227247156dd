package errors

var (
	// Identity
	ErrUsernameTaken       = AlreadyExists("username is already taken")
	ErrEmailTaken          = AlreadyExists("an account with this email already exists")
	ErrUserNotFound        = NotFound("user not found")
	ErrInvalidCredentials  = Unauthorized("invalid credentials")
	ErrPasswordMismatch    = InvalidArg("password fields do not match")
	ErrWrongPassword       = InvalidArg("incorrect password")
	ErrInvalidEmailDomain  = InvalidArg("please use your institutional email to register")
	ErrMissingRoleFields   = InvalidArg("role-required fields cannot be empty")
	ErrUnknownRole         = InvalidArg("role must be student or faculty")
	ErrInactiveAccount     = Unauthorized("invalid credentials") // never reveal inactive state
	ErrInvalidRefreshToken = Unauthorized("invalid refresh token")

	// Content
	ErrPostNotFound    = NotFound("post not found")
	ErrCommentNotFound = NotFound("comment not found")
	ErrTitleTooLong    = InvalidArg("title must be at most 75 characters")
	ErrBodyTooLong     = InvalidArg("body must be at most 1000 characters")
	ErrEmptyTitle      = InvalidArg("title cannot be empty")
	ErrEmptyBody       = InvalidArg("body cannot be empty")
	ErrSelfFollow      = InvalidArg("you cannot follow yourself")
	ErrNotPostOwner    = Forbidden("only the post owner can delete this post")

	// Subforum
	ErrSubforumNotFound     = NotFound("subforum not found")
	ErrSubforumNameTaken    = InvalidArg("a subforum with this name already exists")
	ErrSubforumNotApproved  = FailedPrecondition("subforum is not approved")
	ErrAlreadySubscribed    = AlreadyExists("already subscribed to this subforum")
	ErrNotSubscribed        = NotFound("not subscribed to this subforum")
	ErrDuplicateReport      = FailedPrecondition("you already have a pending report for this subforum")
	ErrAlreadyModerator     = AlreadyExists("user is already a moderator of this subforum")
	ErrNotModerator         = Forbidden("only staff or the subforum creator can manage moderators")
	ErrAdminOnly            = Forbidden("admin access required")
	ErrUnknownAdminAction   = InvalidArg("action must be approve or reject")
	ErrInvalidReportReason  = InvalidArg("invalid report reason")
	ErrInvalidModeratorRole = InvalidArg("role must be moderator or junior_mod")
)
