// Package settings holds the client-side user settings payload: a
// versioned schema persisted as JSON under a single storage key, with an
// explicit merge against defaults instead of ad hoc shape poking.
package settings

import (
	"encoding/json"
	"log"

	"contra/internal/i18n"
	"contra/internal/locale"
)

// StorageKey carries the schema version; a breaking change bumps the
// suffix and old payloads simply fall back to defaults.
const StorageKey = "contra:user_settings:v1"

type Workspace struct {
	AnalysisDepth        string `json:"analysisDepth"`
	AutoRunAnalysis      bool   `json:"autoRunAnalysis"`
	ShowClauseConfidence bool   `json:"showClauseConfidence"`
	ReportFormat         string `json:"reportFormat"`
	RiskThreshold        string `json:"riskThreshold"`
}

type Documents struct {
	RedactSensitiveExports bool   `json:"redactSensitiveExports"`
	AutoDeleteAfter        string `json:"autoDeleteAfter"`
}

type Notifications struct {
	HighRisk           bool `json:"highRisk"`
	Weekly             bool `json:"weekly"`
	Updates            bool `json:"updates"`
	AnalysisComplete   bool `json:"analysisComplete"`
	CreditLowEnabled   bool `json:"creditLowEnabled"`
	CreditLowThreshold int  `json:"creditLowThreshold"`
}

type Privacy struct {
	SessionTimeout string `json:"sessionTimeout"`
}

type Security struct {
	TwoFactorEnabled bool `json:"twoFactorEnabled"`
}

type Settings struct {
	Theme         string        `json:"theme"`
	Language      string        `json:"language"`
	ReduceMotion  bool          `json:"reduceMotion"`
	CompactMode   bool          `json:"compactMode"`
	Workspace     Workspace     `json:"workspace"`
	Documents     Documents     `json:"documents"`
	Notifications Notifications `json:"notifications"`
	Privacy       Privacy       `json:"privacy"`
	Security      Security      `json:"security"`
}

func Defaults() Settings {
	return Settings{
		Theme:    "system",
		Language: string(i18n.Fallback),
		Workspace: Workspace{
			AnalysisDepth:        "standard",
			AutoRunAnalysis:      true,
			ShowClauseConfidence: true,
			ReportFormat:         "pdf",
			RiskThreshold:        "medium",
		},
		Documents: Documents{
			RedactSensitiveExports: true,
			AutoDeleteAfter:        "30d",
		},
		Notifications: Notifications{
			HighRisk:           true,
			Weekly:             true,
			AnalysisComplete:   true,
			CreditLowEnabled:   true,
			CreditLowThreshold: 200,
		},
		Privacy: Privacy{SessionTimeout: "30m"},
	}
}

// Merge reconciles a stored JSON payload against the defaults. Fields
// absent from the payload keep their default; the legacy
// privacy.piiSanitiser flag maps onto documents.redactSensitiveExports
// when the new field is absent. An unreadable payload or unsupported
// language yields defaults rather than an error at the call site.
func Merge(raw []byte) (Settings, error) {
	out := Defaults()
	if len(raw) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return Defaults(), err
	}

	var legacy struct {
		Privacy struct {
			PiiSanitiser *bool `json:"piiSanitiser"`
		} `json:"privacy"`
		Documents struct {
			RedactSensitiveExports *bool `json:"redactSensitiveExports"`
		} `json:"documents"`
	}
	if err := json.Unmarshal(raw, &legacy); err == nil {
		if legacy.Documents.RedactSensitiveExports == nil && legacy.Privacy.PiiSanitiser != nil {
			out.Documents.RedactSensitiveExports = *legacy.Privacy.PiiSanitiser
		}
	}

	if !i18n.IsSupported(out.Language) {
		out.Language = Defaults().Language
	}
	return out, nil
}

// Load reads settings from storage, merging against defaults. A nil
// storage (non-browser context) or corrupt payload yields defaults.
func Load(storage locale.Storage) Settings {
	if storage == nil {
		return Defaults()
	}

	raw, ok := storage.Get(StorageKey)
	if !ok {
		return Defaults()
	}

	merged, err := Merge([]byte(raw))
	if err != nil {
		log.Printf("settings: discarding corrupt payload: %v", err)
		return Defaults()
	}
	return merged
}

// Save writes settings to storage. A nil storage is a no-op.
func Save(storage locale.Storage, s Settings) {
	if storage == nil {
		return
	}

	raw, err := json.Marshal(s)
	if err != nil {
		log.Printf("settings: marshal failed: %v", err)
		return
	}
	storage.Set(StorageKey, string(raw))
}
