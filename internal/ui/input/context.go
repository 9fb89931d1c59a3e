package input

// ModelContext implements the Context interface for the input handler. The
// model fills it from its own state before every key.
type ModelContext struct {
	Path          string
	ComingSoon    bool
	TimeRangePage bool
	Notifications bool
	Submitting    bool
	ResendReady   bool
	Field         string
}

func (c *ModelContext) CurrentPath() string       { return c.Path }
func (c *ModelContext) IsComingSoon() bool        { return c.ComingSoon }
func (c *ModelContext) HasTimeRange() bool        { return c.TimeRangePage }
func (c *ModelContext) OnNotificationsPage() bool { return c.Notifications }
func (c *ModelContext) Busy() bool                { return c.Submitting }
func (c *ModelContext) CanResend() bool           { return c.ResendReady }
func (c *ModelContext) FocusedField() string      { return c.Field }
