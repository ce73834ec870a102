package middlewares

import (
	"net/http"

	"github.com/twilio/twilio-go/client"
)

const headerTwilioSignature = "X-Twilio-Signature"

// ValidateTwilioSignature rejects requests whose X-Twilio-Signature does not
// validate against the form parameters and the public URL Twilio signed.
// publicBaseURL is the externally visible origin (scheme + host), which can
// differ from what the server sees behind a proxy.
func ValidateTwilioSignature(authToken, publicBaseURL string) func(http.Handler) http.Handler {
	validator := client.NewRequestValidator(authToken)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "invalid form body", http.StatusBadRequest)
				return
			}

			params := make(map[string]string, len(r.PostForm))
			for key := range r.PostForm {
				params[key] = r.PostForm.Get(key)
			}

			url := publicBaseURL + r.URL.RequestURI()
			if !validator.Validate(url, params, r.Header.Get(headerTwilioSignature)) {
				http.Error(w, "invalid signature", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
