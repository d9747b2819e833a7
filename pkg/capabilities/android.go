package capabilities

import "time"

// Android is a capability set for the UiAutomator2 and Espresso drivers.
type Android struct {
	Capabilities
}

// NewAndroid returns Android capabilities without an automation name.
func NewAndroid() Android {
	return Android{Capabilities{"platformName": "Android"}}
}

// NewUiAutomator2 returns Android capabilities for the UiAutomator2 driver.
func NewUiAutomator2() Android {
	a := NewAndroid()
	a.AutomationName(UiAutomator2)
	return a
}

// NewEspresso returns Android capabilities for the Espresso driver.
func NewEspresso() Android {
	a := NewAndroid()
	a.AutomationName(Espresso)
	return a
}

func (a Android) AppActivity(activity string)     { a.SetAppium("appActivity", activity) }
func (a Android) AppPackage(pkg string)           { a.SetAppium("appPackage", pkg) }
func (a Android) AppWaitActivity(activity string) { a.SetAppium("appWaitActivity", activity) }
func (a Android) AppWaitPackage(pkg string)       { a.SetAppium("appWaitPackage", pkg) }

// AppWaitDuration bounds how long to wait for the app activity.
func (a Android) AppWaitDuration(d time.Duration) { a.SetAppium("appWaitDuration", d.Milliseconds()) }

// AndroidInstallTimeout bounds app installation.
func (a Android) AndroidInstallTimeout(d time.Duration) {
	a.SetAppium("androidInstallTimeout", d.Milliseconds())
}

func (a Android) AppWaitForLaunch(v bool) { a.SetAppium("appWaitForLaunch", v) }
func (a Android) ForceAppLaunch(v bool)   { a.SetAppium("forceAppLaunch", v) }
func (a Android) AutoLaunch(v bool)       { a.SetAppium("autoLaunch", v) }
func (a Android) IntentCategory(v string) { a.SetAppium("intentCategory", v) }
func (a Android) IntentAction(v string)   { a.SetAppium("intentAction", v) }
func (a Android) IntentFlags(v string)    { a.SetAppium("intentFlags", v) }
func (a Android) OptionalIntentArguments(v string) {
	a.SetAppium("optionalIntentArguments", v)
}
func (a Android) DontStopAppOnReset(v bool) { a.SetAppium("dontStopAppOnReset", v) }

// UninstallOtherPackages removes packages (comma separated) before the session.
func (a Android) UninstallOtherPackages(v string) { a.SetAppium("uninstallOtherPackages", v) }

func (a Android) RemoteAppsCacheLimit(n int) { a.SetAppium("remoteAppsCacheLimit", n) }
func (a Android) AllowTestPackages(v bool)   { a.SetAppium("allowTestPackages", v) }
func (a Android) EnforceAppInstall(v bool)   { a.SetAppium("enforceAppInstall", v) }
