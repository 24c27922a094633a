package devserver

import (
	"errors"
	"strings"
	"testing"
	"time"

	"todosync/internal/command"
	"todosync/internal/domain"
	"todosync/internal/resource"
	"todosync/internal/response"
	"todosync/internal/syncproto"
)

func body(t *testing.T, cmds ...command.Command) []CommandBody {
	t.Helper()
	out := make([]CommandBody, len(cmds))
	for i, c := range cmds {
		raw, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if err := json.Unmarshal(raw, &out[i]); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
	}
	return out
}

func fixedState() *State {
	s := NewState()
	s.Now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }
	return s
}

func mustSync(t *testing.T, s *State, req SyncRequest) syncproto.Response {
	t.Helper()
	resp, err := s.Sync(req)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	return resp
}

func tasks(t *testing.T, resp syncproto.Response) []domain.Task {
	t.Helper()
	raw, ok := resp.Resource(resource.Items)
	if !ok {
		t.Fatalf("no items in response")
	}
	out, err := response.Collection[domain.Task](resource.Items, raw)
	if err != nil {
		t.Fatalf("items do not validate: %v", err)
	}
	return out
}

func TestFullSyncReturnsInboxAndUser(t *testing.T) {
	s := fixedState()
	resp := mustSync(t, s, SyncRequest{SyncToken: "*", ResourceTypes: []string{"all"}})
	if !resp.FullSync {
		t.Fatalf("expected full sync")
	}
	rawUser, ok := resp.Resource(resource.User)
	if !ok {
		t.Fatalf("user missing")
	}
	user, err := response.Item[domain.User](resource.User, rawUser)
	if err != nil {
		t.Fatal(err)
	}
	rawProjects, _ := resp.Resource(resource.Projects)
	projects, err := response.Collection[domain.Project](resource.Projects, rawProjects)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 1 || projects[0].ID != user.InboxProjectID {
		t.Fatalf("expected only the inbox, got %+v", projects)
	}
	for _, tag := range []resource.Type{resource.Items, resource.Sections, resource.Labels, resource.Notes} {
		if raw, ok := resp.Resource(tag); !ok || string(raw) != "[]" {
			t.Fatalf("%s = %s", tag, raw)
		}
	}
}

func TestCommandsApplyInOrderWithTempIDs(t *testing.T) {
	s := fixedState()
	b := command.NewBuilder()
	parent := command.MustNew(command.ItemAddArgs{Content: "Plan trip", Labels: []string{"travel"}}, command.WithTempID("t-parent"))
	child := command.MustNew(command.ItemAddArgs{Content: "Book flights", ParentID: "t-parent"}, command.WithTempID("t-child"))
	note, _ := b.Build(command.NoteAdd, command.NoteAddArgs{ItemID: "t-child", Content: "window seat"})
	resp := mustSync(t, s, SyncRequest{
		SyncToken:     "*",
		ResourceTypes: []string{"items", "notes"},
		Commands:      body(t, parent, child, note),
	})
	for _, c := range []command.Command{parent, child, note} {
		if st, _ := resp.Status(c.ID()); !st.IsOK() {
			t.Fatalf("%s failed: %v", c.Type(), st.Err)
		}
	}
	got := tasks(t, resp)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	parentID := resp.TempIDMapping.Resolve("t-parent")
	if got[1].ParentID == nil || *got[1].ParentID != parentID {
		t.Fatalf("child parent = %v, want %s", got[1].ParentID, parentID)
	}
	if got[0].Priority != 1 || got[0].ChildOrder != 1 || got[0].Labels[0] != "travel" {
		t.Fatalf("unexpected defaults %+v", got[0])
	}
	rawNotes, _ := resp.Resource(resource.Notes)
	if !strings.Contains(string(rawNotes), resp.TempIDMapping.Resolve("t-child")) {
		t.Fatalf("note should reference the child task: %s", rawNotes)
	}
}

func TestUnsupportedAndInvalidCommandsReportStatus(t *testing.T) {
	s := fixedState()
	reminder := command.MustNew(command.ReminderRelativeArgs{ItemID: "x", MinuteOffset: 30})
	resp := mustSync(t, s, SyncRequest{Commands: append(body(t, reminder),
		CommandBody{Type: "item_teleport", UUID: "u-unknown", Args: map[string]any{}},
		CommandBody{Type: "item_add", UUID: "u-invalid", Args: map[string]any{"content": ""}},
		CommandBody{Type: "item_close", UUID: "u-missing", Args: map[string]any{"id": "nope"}},
		CommandBody{Type: "item_close", UUID: "u-temp", TempID: "tmp", Args: map[string]any{"id": "nope"}},
	)})
	cases := map[string]struct {
		code int
		msg  string
	}{
		reminder.ID(): {codeUnsupported, "reminder_add is not supported by the dev server"},
		"u-unknown":   {codeUnknownCommand, "item_teleport"},
		"u-invalid":   {codeInvalidArgument, "content"},
		"u-missing":   {codeNotFound, "item nope not found"},
		"u-temp":      {codeInvalidTempID, "does not create"},
	}
	for uuid, want := range cases {
		st, ok := resp.Status(uuid)
		if !ok || st.IsOK() {
			t.Fatalf("%s: expected failure, got %+v", uuid, st)
		}
		if st.Err.Code != want.code || !strings.Contains(st.Err.Message, want.msg) {
			t.Fatalf("%s: got %+v", uuid, st.Err)
		}
	}
}

func TestIncrementalSyncReturnsOnlyChanges(t *testing.T) {
	s := fixedState()
	a := command.MustNew(command.ItemAddArgs{Content: "A"}, command.WithTempID("a"))
	bb := command.MustNew(command.ItemAddArgs{Content: "B"}, command.WithTempID("b"))
	first := mustSync(t, s, SyncRequest{ResourceTypes: []string{"items"}, Commands: body(t, a, bb)})
	idA := first.TempIDMapping.Resolve("a")

	closeA := command.MustNew(command.ItemCloseArgs{ID: idA})
	second := mustSync(t, s, SyncRequest{SyncToken: first.SyncToken, ResourceTypes: []string{"items", "user"}, Commands: body(t, closeA)})
	if second.FullSync {
		t.Fatalf("expected incremental sync")
	}
	got := tasks(t, second)
	if len(got) != 1 || got[0].ID != idA || !got[0].Checked || got[0].CompletedAt == nil {
		t.Fatalf("unexpected delta %+v", got)
	}
	if _, ok := second.Resource(resource.User); ok {
		t.Fatalf("unchanged user should not be resent")
	}

	del := command.MustNew(command.ItemDeleteArgs{ID: idA})
	third := mustSync(t, s, SyncRequest{SyncToken: second.SyncToken, ResourceTypes: []string{"items"}, Commands: body(t, del)})
	if got := tasks(t, third); len(got) != 1 || !got[0].IsDeleted {
		t.Fatalf("deletion should be sent as a tombstone: %+v", got)
	}
	full := mustSync(t, s, SyncRequest{ResourceTypes: []string{"items"}})
	if got := tasks(t, full); len(got) != 1 || got[0].Content != "B" {
		t.Fatalf("full sync should skip deleted tasks: %+v", got)
	}
}

func TestInvalidSyncToken(t *testing.T) {
	_, err := fixedState().Sync(SyncRequest{SyncToken: "abc"})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestItemMoveVariants(t *testing.T) {
	s := fixedState()
	proj := command.MustNew(command.ProjectAddArgs{Name: "Work"}, command.WithTempID("p"))
	sec := command.MustNew(command.SectionAddArgs{Name: "Later", ProjectID: "p"}, command.WithTempID("s"))
	task := command.MustNew(command.ItemAddArgs{Content: "Report"}, command.WithTempID("i"))
	toSection := command.MustNew(command.ItemMoveToSectionArgs{ID: "i", SectionID: "s"})
	resp := mustSync(t, s, SyncRequest{ResourceTypes: []string{"items"}, Commands: body(t, proj, sec, task, toSection)})
	got := tasks(t, resp)
	if got[0].SectionID == nil || *got[0].SectionID != resp.TempIDMapping.Resolve("s") || got[0].ProjectID != resp.TempIDMapping.Resolve("p") {
		t.Fatalf("move to section: %+v", got[0])
	}

	inbox := s.user.InboxProjectID
	toProject := command.MustNew(command.ItemMoveToProjectArgs{ID: got[0].ID, ProjectID: inbox})
	resp = mustSync(t, s, SyncRequest{SyncToken: resp.SyncToken, ResourceTypes: []string{"items"}, Commands: body(t, toProject)})
	got = tasks(t, resp)
	if got[0].ProjectID != inbox || got[0].SectionID != nil {
		t.Fatalf("move to project: %+v", got[0])
	}
}

func TestLabelRenameAndCascade(t *testing.T) {
	s := fixedState()
	label := command.MustNew(command.LabelAddArgs{Name: "home"}, command.WithTempID("l"))
	task := command.MustNew(command.ItemAddArgs{Content: "Vacuum", Labels: []string{"home", "weekly"}})
	rename := command.MustNew(command.LabelUpdateArgs{ID: "l", Name: command.Ptr("house")})
	resp := mustSync(t, s, SyncRequest{ResourceTypes: []string{"items"}, Commands: body(t, label, task, rename)})
	if got := tasks(t, resp); got[0].Labels[0] != "house" {
		t.Fatalf("rename not applied: %v", got[0].Labels)
	}
	del := command.MustNew(command.LabelDeleteArgs{ID: resp.TempIDMapping.Resolve("l"), Cascade: command.Ptr("all")})
	resp = mustSync(t, s, SyncRequest{ResourceTypes: []string{"items"}, Commands: body(t, del)})
	if got := tasks(t, resp); len(got[0].Labels) != 1 || got[0].Labels[0] != "weekly" {
		t.Fatalf("cascade not applied: %v", got[0].Labels)
	}
}

func TestInboxCannotBeDeleted(t *testing.T) {
	s := fixedState()
	del := command.MustNew(command.ProjectDeleteArgs{ID: s.user.InboxProjectID})
	resp := mustSync(t, s, SyncRequest{Commands: body(t, del)})
	if st, _ := resp.Status(del.ID()); st.IsOK() {
		t.Fatalf("inbox deletion should fail")
	}
}
