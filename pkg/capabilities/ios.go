package capabilities

import "time"

// IOS is a capability set for the XCUITest driver.
type IOS struct {
	Capabilities
}

// NewIOS returns iOS capabilities without an automation name.
func NewIOS() IOS {
	return IOS{Capabilities{"platformName": "iOS"}}
}

// NewXCUITest returns iOS capabilities for the XCUITest driver.
func NewXCUITest() IOS {
	i := NewIOS()
	i.AutomationName(XCUITest)
	return i
}

func (i IOS) BundleID(id string)             { i.SetAppium("bundleId", id) }
func (i IOS) LocalizableStringsDir(d string) { i.SetAppium("localizableStringsDir", d) }
func (i IOS) Language(lang string)           { i.SetAppium("language", lang) }
func (i IOS) Locale(locale string)           { i.SetAppium("locale", locale) }
func (i IOS) CalendarFormat(v string)        { i.SetAppium("calendarFormat", v) }

// AppPushTimeout bounds pushing the app to a real device.
func (i IOS) AppPushTimeout(d time.Duration) { i.SetAppium("appPushTimeout", d.Milliseconds()) }

// AppInstallStrategy is serial, parallel or ios-deploy.
func (i IOS) AppInstallStrategy(v string) { i.SetAppium("appInstallStrategy", v) }

func (i IOS) AutoAcceptAlerts(v bool) { i.SetAppium("autoAcceptAlerts", v) }
