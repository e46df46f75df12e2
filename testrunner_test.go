package loopback

import "testing"

// runScript ticks a runner, sampler, and world together until the script and
// its queued input have drained, with a tick cap to catch runaway scripts.
func runScript(t *testing.T, r *TestRunner, s *Sampler, w *World) {
	t.Helper()
	for tick := 0; tick < 1000; tick++ {
		r.Step(s)
		if r.Done() && s.Pending() == 0 {
			return
		}
		smp := InputSample{Click: ClickIdle}
		if s.Pending() > 0 {
			smp = s.Sample()
		}
		w.Update(smp.Cursor, smp.Click)
	}
	t.Fatal("script did not finish within 1000 ticks")
}

func TestLoadTestScriptErrors(t *testing.T) {
	if _, err := LoadTestScript([]byte("{not json")); err == nil {
		t.Error("expected a parse error for malformed JSON")
	}
	if _, err := LoadTestScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected an error for an empty script")
	}
}

func TestScriptedSpawnAndDrag(t *testing.T) {
	script := `{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "wait", "ticks": 3},
		{"action": "drag", "fromX": 400, "fromY": 300, "toX": 520, "toY": 260, "ticks": 10}
	]}`
	r, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}

	w := newTestWorld()
	var s Sampler
	runScript(t, r, &s, w)

	objs := w.Objects()
	if len(objs) != 2 {
		t.Fatalf("scripted click spawned %d objects, want 2", len(objs))
	}

	// The drag grabbed the front object's translate cross and moved it;
	// the spawned object sits behind it.
	assertVec(t, "dragged position", objs[0].Transform.Position, V2(520, 260), epsilon)
	if objs[0].Grabbed() != HandleNone {
		t.Errorf("grab survived the scripted release: %v", objs[0].Grabbed())
	}
}

func TestScriptWaitPacesSteps(t *testing.T) {
	script := `{"steps": [{"action": "wait", "ticks": 5}, {"action": "click", "x": 1, "y": 1}]}`
	r, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}

	var s Sampler
	// Five wait ticks pass before the click is queued.
	for i := 0; i < 5; i++ {
		r.Step(&s)
		if s.Pending() != 0 {
			t.Fatalf("input queued during wait at tick %d", i)
		}
	}
	r.Step(&s)
	if s.Pending() != 2 {
		t.Errorf("click not queued after the wait: %d pending", s.Pending())
	}
}
