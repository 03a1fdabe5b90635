// Package i18n holds the user-facing message catalog. Messages are looked up by
// stable code and localized from the Accept-Language header.
package i18n

import (
	"golang.org/x/text/language"
)

type Code string

const (
	CodeInvalidCredentials Code = "invalid_credentials"
	CodeAccountForbidden   Code = "account_forbidden"
	CodeSessionRequired    Code = "session_required"
	CodeSessionInvalid     Code = "session_invalid"
	CodeForbidden          Code = "forbidden"
	CodeNotFound           Code = "not_found"
	CodeInvalidRequest     Code = "invalid_request"
	CodeServerUnavailable  Code = "server_unavailable"
	CodeServerTimeout      Code = "server_timeout"
	CodeServerError        Code = "server_error"
	CodeEmptyCart          Code = "empty_cart"
	CodeTooManyRequests    Code = "too_many_requests"
	CodeInternal           Code = "internal_error"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Polish,
}

var matcher = language.NewMatcher(supported)

var catalog = map[language.Tag]map[Code]string{
	language.English: {
		CodeInvalidCredentials: "Invalid username or password",
		CodeAccountForbidden:   "Your account is not allowed to sign in",
		CodeSessionRequired:    "Please sign in to continue",
		CodeSessionInvalid:     "Your session has expired, please sign in again",
		CodeForbidden:          "You do not have permission to perform this action",
		CodeNotFound:           "The requested item was not found",
		CodeInvalidRequest:     "Please check the entered data",
		CodeServerUnavailable:  "Server unavailable, please try again later",
		CodeServerTimeout:      "The server took too long to respond",
		CodeServerError:        "Server error, please try again later",
		CodeEmptyCart:          "Your cart is empty",
		CodeTooManyRequests:    "Too many attempts, please wait a moment",
		CodeInternal:           "Internal server error",
	},
	language.Polish: {
		CodeInvalidCredentials: "Nieprawidłowa nazwa użytkownika lub hasło",
		CodeAccountForbidden:   "To konto nie może się zalogować",
		CodeSessionRequired:    "Zaloguj się, aby kontynuować",
		CodeSessionInvalid:     "Sesja wygasła, zaloguj się ponownie",
		CodeForbidden:          "Brak uprawnień do wykonania tej operacji",
		CodeNotFound:           "Nie znaleziono żądanego elementu",
		CodeInvalidRequest:     "Sprawdź wprowadzone dane",
		CodeServerUnavailable:  "Serwer niedostępny, spróbuj ponownie później",
		CodeServerTimeout:      "Serwer nie odpowiedział na czas",
		CodeServerError:        "Błąd serwera, spróbuj ponownie później",
		CodeEmptyCart:          "Koszyk jest pusty",
		CodeTooManyRequests:    "Zbyt wiele prób, odczekaj chwilę",
		CodeInternal:           "Wewnętrzny błąd serwera",
	},
}

// Match picks the best supported language for an Accept-Language value.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supported[0]
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

func Localize(acceptLanguage string, code Code) string {
	return Message(Match(acceptLanguage), code)
}

func Message(tag language.Tag, code Code) string {
	if msg, ok := catalog[tag][code]; ok {
		return msg
	}
	if msg, ok := catalog[supported[0]][code]; ok {
		return msg
	}
	return string(code)
}
