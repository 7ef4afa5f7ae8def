package sift

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for registry and projection events.
var (
	SignalViewAdded         = capitan.NewSignal("sift.view.added", "Serializer spec registered")
	SignalViewRemoved       = capitan.NewSignal("sift.view.removed", "Serializer spec removed")
	SignalDefaultChanged    = capitan.NewSignal("sift.default.changed", "Default view repointed")
	SignalSerializeComplete = capitan.NewSignal("sift.serialize.complete", "Single-record projection finished")
	SignalSerializeMany     = capitan.NewSignal("sift.serialize.many", "Batch projection finished")
)

// Keys for typed event data.
var (
	KeyView       = capitan.NewStringKey("view")
	KeyFieldCount = capitan.NewIntKey("field_count")
	KeyBatchSize  = capitan.NewIntKey("batch_size")
	KeyKeptCount  = capitan.NewIntKey("kept_count")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// emitViewAdded emits an event when a view is registered.
func emitViewAdded(ctx context.Context, view string) {
	capitan.Emit(ctx, SignalViewAdded,
		KeyView.Field(view),
	)
}

// emitViewRemoved emits an event when a view is removed.
func emitViewRemoved(ctx context.Context, view string) {
	capitan.Emit(ctx, SignalViewRemoved,
		KeyView.Field(view),
	)
}

// emitDefaultChanged emits an event when the default view is repointed.
func emitDefaultChanged(ctx context.Context, view string) {
	capitan.Emit(ctx, SignalDefaultChanged,
		KeyView.Field(view),
	)
}

// emitSerializeComplete emits an event when a single-record projection finishes.
func emitSerializeComplete(ctx context.Context, view string, fields int, duration time.Duration, err error) {
	event := []capitan.Field{
		KeyView.Field(view),
		KeyFieldCount.Field(fields),
		KeyDuration.Field(duration),
	}
	if err != nil {
		event = append(event, KeyError.Field(err))
		capitan.Error(ctx, SignalSerializeComplete, event...)
	} else {
		capitan.Emit(ctx, SignalSerializeComplete, event...)
	}
}

// emitSerializeMany emits an event when a batch projection finishes.
func emitSerializeMany(ctx context.Context, batch, kept int) {
	capitan.Emit(ctx, SignalSerializeMany,
		KeyBatchSize.Field(batch),
		KeyKeptCount.Field(kept),
	)
}
