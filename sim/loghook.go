package sim

import (
	"fmt"
	"log"
)

// LogHookBase proovides the common logic for all LogHooks
type LogHookBase struct {
	*log.Logger
}

// PrintHook prints every hook invocation as one line on its logger.
type PrintHook struct {
	LogHookBase
}

// NewPrintHook creates a PrintHook that writes to the given logger.
func NewPrintHook(logger *log.Logger) *PrintHook {
	h := new(PrintHook)
	h.Logger = logger

	return h
}

// Func prints the hook position, the domain and the item.
func (h *PrintHook) Func(ctx HookCtx) {
	domain := "-"
	if named, ok := ctx.Domain.(Named); ok {
		domain = named.Name()
	}

	line := fmt.Sprintf("[%s] %s: %v", ctx.Pos.Name, domain, ctx.Item)
	if ctx.Detail != nil {
		line += fmt.Sprintf(" (%v)", ctx.Detail)
	}

	h.Println(line)
}
