//go:build js && wasm

package main

import (
	"errors"
	"fmt"
	"syscall/js"
	"time"

	"github.com/cwbudde/algo-tuner/internal/webdemo"
)

var (
	session *webdemo.Session
	frame   []float32
	funcs   []js.Func
)

var errNotInitialized = errors.New("tuner not initialized")

func main() {
	js.Global().Set("AlgoTuner", newAPI())
	select {}
}

// newAPI builds the object exposed to JavaScript as AlgoTuner. Every method
// reports failures as {error: message} instead of throwing.
func newAPI() js.Value {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		sr := 48000.0
		size := 2048
		if len(args) > 0 {
			sr = args[0].Float()
		}
		if len(args) > 1 {
			size = args[1].Int()
		}
		s, err := webdemo.NewSession(sr, size)
		if err != nil {
			return errorValue(err)
		}
		session = s
		frame = make([]float32, size)
		return js.Null()
	}))

	api.Set("detect", export(func(args []js.Value) any {
		if session == nil {
			return errorValue(errNotInitialized)
		}
		if len(args) < 1 {
			return errorValue(errors.New("detect: missing frame"))
		}
		input := args[0]
		n := input.Length()
		if cap(frame) < n {
			frame = make([]float32, n)
		}
		frame = frame[:n]
		for i := 0; i < n; i++ {
			frame[i] = float32(input.Index(i).Float())
		}

		now := time.Duration(0)
		if len(args) > 1 {
			now = time.Duration(args[1].Float() * float64(time.Millisecond))
		}

		r := session.Process(frame, now)
		out := js.Global().Get("Object").New()
		out.Set("raw", r.Raw)
		out.Set("pitch", r.Pitch)
		out.Set("level", r.Level)
		out.Set("note", r.Note.Name)
		out.Set("octave", r.Note.Octave)
		out.Set("cents", r.Note.Cents)
		out.Set("target", r.Note.Target)
		out.Set("status", r.Note.Status().String())
		out.Set("gauge", r.Note.GaugeDegrees())
		return out
	}))

	api.Set("reset", export(func(args []js.Value) any {
		if session == nil {
			return errorValue(errNotInitialized)
		}
		session.Reset()
		return js.Null()
	}))

	api.Set("free", export(func(args []js.Value) any {
		session = nil
		frame = nil
		return js.Null()
	}))

	return api
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) (result any) {
		defer func() {
			if r := recover(); r != nil {
				result = errorValue(fmt.Errorf("panic: %v", r))
			}
		}()
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func errorValue(err error) js.Value {
	out := js.Global().Get("Object").New()
	out.Set("error", err.Error())
	return out
}
