// model/license.go
package model

import "strings"

// LicenseStatus is the normalized driver-license state. The order store emits
// the approved state as the number 1, the string "1" or the string "Approved"
// depending on which endpoint serialized it; ParseLicenseStatus accepts all
// three. That acceptance is a contract with the store, not an accident.
type LicenseStatus int

const (
	LicenseUnknown LicenseStatus = iota
	LicenseApproved
	LicenseNotApproved
)

func ParseLicenseStatus(v any) LicenseStatus {
	switch s := v.(type) {
	case nil:
		return LicenseUnknown
	case float64:
		if s == 1 {
			return LicenseApproved
		}
		return LicenseNotApproved
	case int:
		if s == 1 {
			return LicenseApproved
		}
		return LicenseNotApproved
	case string:
		if s == "1" || strings.EqualFold(s, "approved") {
			return LicenseApproved
		}
		if s == "" {
			return LicenseUnknown
		}
		return LicenseNotApproved
	default:
		return LicenseUnknown
	}
}

// LicenseSource records which lookup confirmed (or failed to confirm) the
// license.
type LicenseSource string

const (
	LicenseSourceProfile LicenseSource = "PROFILE"
	LicenseSourceRecord  LicenseSource = "LICENSE_RECORD"
	LicenseSourceNone    LicenseSource = "NOT_FOUND"
)

// LicenseVerificationResult is derived fresh on every check, never cached.
type LicenseVerificationResult struct {
	Verified bool          `json:"verified"`
	Source   LicenseSource `json:"source"`
}
