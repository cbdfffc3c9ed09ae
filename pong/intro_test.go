package pong

import "testing"

func TestIntroContentFollowsBindings(t *testing.T) {
	in := NewIntro(DefaultBindings())
	if len(in.Texts) != 2 {
		t.Fatalf("got %d texts, want 2", len(in.Texts))
	}
	if got := in.Texts[0].Content; got != "W/S and Up/Down to control paddles" {
		t.Errorf("instructions = %q", got)
	}
	if got := in.Texts[1].Content; got != "Press space to start" {
		t.Errorf("prompt = %q", got)
	}

	custom := Bindings{
		Left:  Controls{Up: "Q", Down: "A"},
		Right: Controls{Up: "P", Down: "L"},
		Start: KeyEnter,
	}
	in = NewIntro(custom)
	if got := in.Texts[0].Content; got != "Q/A and P/L to control paddles" {
		t.Errorf("custom instructions = %q", got)
	}
	if got := in.Texts[1].Content; got != "Press enter to start" {
		t.Errorf("custom prompt = %q", got)
	}
}

func TestAnimateInTimeline(t *testing.T) {
	// Steps are exact binary fractions so the window edges land exactly.
	const dt = 0.125
	text := &IntroText{Top: 10, In: TextAnimation{StartTime: 0.5, Duration: 0.5, EndPos: 10}}
	log := quietLogger()

	prev := float32(0)
	for i := 1; i <= 8; i++ {
		text.animateIn(dt, log)
		elapsed := float32(i) * dt

		if elapsed < text.In.StartTime && text.Alpha != 0 {
			t.Errorf("elapsed %v: alpha %v before start", elapsed, text.Alpha)
		}
		if text.Alpha < prev {
			t.Errorf("elapsed %v: alpha fell from %v to %v", elapsed, prev, text.Alpha)
		}
		prev = text.Alpha
	}

	if text.Alpha != 1 {
		t.Errorf("alpha at end of window = %v, want 1", text.Alpha)
	}
	// The slide runs at 0.8 of the fade rate: 23 - 13*0.8.
	if !near(text.Top, 12.6) {
		t.Errorf("top at end of window = %v, want 12.6", text.Top)
	}

	for i := 0; i < 10; i++ {
		text.animateIn(dt, log)
	}
	if text.Alpha != 1 || !near(text.Top, 12.6) {
		t.Errorf("after window: alpha %v top %v, want held at 1 / 12.6", text.Alpha, text.Top)
	}
}

func TestAnimateInStartsLow(t *testing.T) {
	text := &IntroText{In: TextAnimation{StartTime: 0.5, Duration: 0.5, EndPos: 10}}
	text.animateIn(0.5, quietLogger())
	if text.Alpha != 0 || text.Top != 23 {
		t.Errorf("at start: alpha %v top %v, want 0 / 23", text.Alpha, text.Top)
	}
}

func TestAnimateInSettlesWhenSkippingWindowEnd(t *testing.T) {
	text := &IntroText{In: TextAnimation{StartTime: 0.5, Duration: 0.5, EndPos: 10}}
	log := quietLogger()

	text.animateIn(0.75, log)
	if text.Alpha != 0.5 {
		t.Fatalf("alpha mid window = %v, want 0.5", text.Alpha)
	}

	// One long frame jumps past the end of the window.
	text.animateIn(0.5, log)
	if text.Alpha != 1 {
		t.Errorf("alpha after skipping window end = %v, want 1", text.Alpha)
	}
}

func TestFadeOutWaitsForAnimateIn(t *testing.T) {
	text := &IntroText{
		In:      TextAnimation{StartTime: 0.5, Duration: 0.5, EndPos: 10},
		FadeOut: true,
	}
	in := &Intro{Texts: []*IntroText{text}}
	log := quietLogger()

	in.Update(0.75, log)
	if text.Alpha != 0.5 {
		t.Errorf("alpha = %v, want 0.5 with fade-out held back", text.Alpha)
	}

	in.Update(0.5, log)
	if !near(text.Alpha, 0.95) {
		t.Errorf("alpha = %v, want 0.95 once fade-out owns the text", text.Alpha)
	}
}

func TestFadeOutTimeline(t *testing.T) {
	const dt = 0.125
	in := NewIntro(DefaultBindings())
	text := in.Texts[0]
	log := quietLogger()

	// 2.5s of countdown.
	for i := 0; i < 20; i++ {
		in.Update(dt, log)
	}
	if text.Alpha != 1 {
		t.Fatalf("alpha = %v before fade-out, want 1", text.Alpha)
	}

	top := text.Top
	in.Update(dt, log)
	if !near(text.Alpha, 0.95) {
		t.Errorf("alpha = %v after first fade step, want 0.95", text.Alpha)
	}
	if !near(text.Top, top+0.6) {
		t.Errorf("top = %v after first fade step, want %v", text.Top, top+0.6)
	}

	for i := 0; i < 40; i++ {
		in.Update(dt, log)
	}
	if text.Alpha != 0 {
		t.Errorf("alpha = %v after fade-out, want 0", text.Alpha)
	}

	// The prompt never fades out.
	prompt := in.Texts[1]
	if prompt.FadeOut {
		t.Error("prompt has fade-out enabled")
	}
	if prompt.Alpha != 1 {
		t.Errorf("prompt alpha = %v at %vs, want 1", prompt.Alpha, prompt.In.Elapsed)
	}
}
