package adminsdk

// Notifier surfaces user-visible notices. The console shell supplies an
// implementation bound to its widget toolkit; the gateway only guarantees
// it produces at most one notice per rejected call.
type Notifier interface {
	// Error shows a transient error notice.
	Error(msg string)

	// ConfirmLogout shows a blocking confirmation after the server signals
	// a forced logout. Returning true acknowledges the logout; false keeps
	// the (already invalid) session on screen.
	ConfirmLogout(title, content string) bool
}

// Navigator performs whole-page navigation outside the client-side router:
// jumping to the login screen after a 401, or reloading after a forced
// logout.
type Navigator interface {
	ToLogin()
	Reload()
}

// NopNotifier discards notices and declines every confirmation.
type NopNotifier struct{}

func (NopNotifier) Error(string) {}

func (NopNotifier) ConfirmLogout(string, string) bool { return false }

// NopNavigator ignores navigation requests.
type NopNavigator struct{}

func (NopNavigator) ToLogin() {}

func (NopNavigator) Reload() {}
