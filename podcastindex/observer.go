package podcastindex

// Observer receives a fire-and-forget event after every successful API
// call and once at client construction. Properties carry only coarse
// call metadata (endpoint name, result counts), never credentials or
// response payloads. Observers invoked from concurrent calls must be
// safe under concurrent invocation.
type Observer func(event string, properties map[string]any)

// observe dispatches an event to the configured observer, if any. A
// panicking observer is swallowed so it can never disturb the caller's
// result path.
func (c *Client) observe(event string, properties map[string]any) {
	if c.observer == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	c.observer(event, properties)
}
