package util

import "strings"

// BannerName derives a module's display name: the directory name with a trailing
// "_api" removed, upper-cased. token_api -> TOKEN, order_api_v2 -> ORDER_API_V2.
func BannerName(module string) string {
	return strings.ToUpper(strings.TrimSuffix(module, "_api"))
}
