package appium

import "context"

// AppStrings returns the app's localized strings. Empty language and
// stringFile use the device defaults.
func (c *Client) AppStrings(ctx context.Context, language, stringFile string) (map[string]string, error) {
	body := map[string]interface{}{}
	if language != "" {
		body["language"] = language
	}
	if stringFile != "" {
		body["stringFile"] = stringFile
	}
	return decode[map[string]string](c.post(ctx, "appium/app/strings", body))
}
