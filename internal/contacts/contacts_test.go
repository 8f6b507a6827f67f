package contacts

import "testing"

func TestAssistantIsFirst(t *testing.T) {
	d := NewDirectory()
	list := d.List()
	if len(list) == 0 {
		t.Fatal("empty directory")
	}
	if !list[0].IsAssistant || list[0].ID != AssistantID {
		t.Errorf("first contact = %+v, want the assistant", list[0])
	}
}

func TestGet(t *testing.T) {
	d := NewDirectory()

	c, ok := d.Get("elena")
	if !ok {
		t.Fatal("elena not found")
	}
	if c.Name != "Elena Rodriguez" {
		t.Errorf("name = %q, want Elena Rodriguez", c.Name)
	}

	if _, ok := d.Get("nobody"); ok {
		t.Error("Get(nobody) should not succeed")
	}
}

func TestSetLastMessage(t *testing.T) {
	d := NewDirectory()

	d.SetLastMessage("liam", "new preview")
	c, _ := d.Get("liam")
	if c.LastMessage != "new preview" {
		t.Errorf("preview = %q, want new preview", c.LastMessage)
	}
}

func TestListReturnsCopy(t *testing.T) {
	d := NewDirectory()
	list := d.List()
	list[0].Name = "mutated"

	fresh := d.List()
	if fresh[0].Name == "mutated" {
		t.Error("List() leaked internal slice")
	}
}
