package commands

// TenantConfig holds the per-country pieces that change between runs: the
// panel address and the session cookies lifted from a logged-in browser.
// Secrets belong in config.local.json5, which overrides config.json5.
type TenantConfig struct {
	BaseUrl      string `json:"base_url"`
	SessionToken string `json:"session_token"`
	XsrfToken    string `json:"xsrf_token"`
	IdList       string `json:"id_list"`
}

type Config struct {
	Database  string                  `json:"database"`
	PageCache string                  `json:"page_cache"`
	Tenants   map[string]TenantConfig `json:"tenants"`
}
