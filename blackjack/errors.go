package blackjack

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShoeEmpty means the shoe ran dry mid-round. A correct penetration
// setting leaves enough cards past the cut to finish any round, so this
// always indicates a configuration or logic defect.
var ErrShoeEmpty = errors.New("shoe is empty")

type ConfigError string

func (e ConfigError) Error() string { return "invalid config: " + string(e) }

func ErrConfig(msg string) error { return ConfigError(msg) }

// IllegalActionError 策略返回了非法动作（策略 bug，立即失败，不重试）
type IllegalActionError struct {
	Action Action
	Legal  []Action
}

func (e *IllegalActionError) Error() string {
	names := make([]string, 0, len(e.Legal))
	for _, a := range e.Legal {
		names = append(names, ActionDictionary[a])
	}
	return fmt.Sprintf("illegal action %s, legal: [%s]", ActionDictionary[e.Action], strings.Join(names, " "))
}
