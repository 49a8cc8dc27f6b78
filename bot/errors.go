package bot

import "fmt"

var (
	ErrHubNotSet      = fmt.Errorf("hub client not set")
	ErrCallbackNotSet = fmt.Errorf("callback not set")
	ErrAlreadyStarted = fmt.Errorf("bot already started")
)
