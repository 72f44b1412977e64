package resolver

import (
	"context"

	"github.com/specialistvlad/rteopts/internal/armcc"
	"github.com/specialistvlad/rteopts/internal/config"
	"github.com/specialistvlad/rteopts/internal/ctxlog"
	"github.com/specialistvlad/rteopts/internal/option"
)

// Resolve computes the new value of every option slot the strategy knows.
// Slots classified as option.Unknown are skipped. The output follows the
// order of slots and depends on nothing but rc and slots.
func Resolve(ctx context.Context, rc *Context, slots []config.OptionSlot) ([]option.Resolved, error) {
	if rc == nil {
		return nil, ErrNilConfiguration
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving option slots.", "slots", len(slots), "generation", rc.generation.String())

	resolved := make([]option.Resolved, 0, len(slots))
	for _, slot := range slots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		kind := rc.strategy.Classify(slot.ID)
		if kind == option.Unknown {
			logger.Debug("Skipping unknown option.", "id", slot.ID)
			continue
		}

		value := rc.strategy.Synthesizer.ValueFor(kind, armcc.Request{
			Generation: rc.generation,
			Settings:   rc.settings,
			Current:    slot.Current,
		})
		r := option.Resolved{
			ID:    slot.ID,
			Kind:  kind,
			Value: value,
			Clear: rc.strategy.ShouldClear(kind),
		}
		logger.Debug("Option resolved.", "id", slot.ID, "kind", kind.String(), "absent", value.IsAbsent(), "clear", r.Clear)
		resolved = append(resolved, r)
	}
	return resolved, nil
}
