/*
Package adminsdk is the client-side core of the admin console: the HTTP
gateway every API call passes through, the reactive session store, and typed
clients for the user and company-state resources.

# Client and Session

Client is the single configured HTTP gateway. It attaches the bearer
credential and a request ID to every outbound call, unwraps the business
envelope from responses, and classifies failures. It never retries and never
swallows an error; every rejection reaches the caller after producing at
most one user notice.

	store, err := credstore.NewSQLite("console.db", secret)
	client := adminsdk.New("https://api.example.com",
		adminsdk.WithCredentials(store),
		adminsdk.WithNotifier(notifier),
	)

Session holds the authenticated actor's profile and role as process-wide
reactive state:

	session := adminsdk.NewSession(client)
	cancel := session.Subscribe(func(info adminsdk.UserInfo) {
		// runs synchronously on every mutation
	})

	if err := session.Login(ctx, username, password); err != nil {
		// credential is guaranteed clear, session unchanged
	}

Login trusts the login response as authoritative; use WithRefetchAfterLogin
to re-fetch the profile immediately after login instead. Logout tears the
session down even when the remote logout call fails.

# Forced logout

When the server answers with one of the forced-logout business codes
(50008, 50012, 50014) on any endpoint other than /user/info, the gateway
rejects the call immediately and, off the caller's goroutine, asks the
Notifier for confirmation before tearing down the session and reloading.

# Envelope

Every response body is expected to be the `{code, msg, data}` envelope with
success code 20000. Bodies without a code field are passed through raw, so
endpoints outside the envelope convention keep working.
*/
package adminsdk
