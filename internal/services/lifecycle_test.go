package services

import (
	"testing"
	"time"

	"github.com/cloudlearn-droid/CloudVault/internal/models"
)

func strPtr(s string) *string { return &s }

func testFolder(id string, parentID *string, deleted bool, createdAt time.Time) models.Folder {
	return models.Folder{
		ID:        id,
		Name:      "folder-" + id,
		OwnerID:   "owner",
		ParentID:  parentID,
		IsDeleted: deleted,
		CreatedAt: createdAt,
	}
}

func testFile(id string, folderID *string, deleted bool, createdAt time.Time) models.File {
	return models.File{
		ID:         id,
		Name:       "file-" + id,
		OwnerID:    "owner",
		FolderID:   folderID,
		IsUploaded: true,
		IsDeleted:  deleted,
		CreatedAt:  createdAt,
	}
}

// A forest used throughout:
//
//	root
//	├── docs
//	│   └── reports
//	└── pics
//	side (second root)
func testForest(now time.Time) []models.Folder {
	return []models.Folder{
		testFolder("root", nil, false, now),
		testFolder("docs", strPtr("root"), false, now.Add(time.Minute)),
		testFolder("reports", strPtr("docs"), false, now.Add(2*time.Minute)),
		testFolder("pics", strPtr("root"), false, now.Add(3*time.Minute)),
		testFolder("side", nil, false, now.Add(4*time.Minute)),
	}
}

func TestBuildChildIndex(t *testing.T) {
	index := buildChildIndex(testForest(time.Now()))

	if got := index[""]; len(got) != 2 || got[0] != "root" || got[1] != "side" {
		t.Errorf("roots = %v, want [root side]", got)
	}
	if got := index["root"]; len(got) != 2 || got[0] != "docs" || got[1] != "pics" {
		t.Errorf("children of root = %v, want [docs pics]", got)
	}
	if got := index["docs"]; len(got) != 1 || got[0] != "reports" {
		t.Errorf("children of docs = %v, want [reports]", got)
	}
	if got := index["reports"]; len(got) != 0 {
		t.Errorf("children of reports = %v, want none", got)
	}
}

func TestCollectSubtreeParentsFirst(t *testing.T) {
	index := buildChildIndex(testForest(time.Now()))

	got := collectSubtree("root", index)
	if len(got) != 4 {
		t.Fatalf("subtree size = %d, want 4: %v", len(got), got)
	}
	if got[0] != "root" {
		t.Errorf("subtree must start with its root, got %v", got)
	}

	// every parent appears before its children
	pos := map[string]int{}
	for i, id := range got {
		pos[id] = i
	}
	if pos["docs"] > pos["reports"] {
		t.Errorf("docs must come before reports: %v", got)
	}
	if pos["root"] > pos["docs"] || pos["root"] > pos["pics"] {
		t.Errorf("root must come before its children: %v", got)
	}

	// siblings do not leak in
	if _, ok := pos["side"]; ok {
		t.Errorf("side is not part of root's subtree: %v", got)
	}
}

func TestCollectSubtreeLeaf(t *testing.T) {
	index := buildChildIndex(testForest(time.Now()))

	got := collectSubtree("reports", index)
	if len(got) != 1 || got[0] != "reports" {
		t.Errorf("leaf subtree = %v, want [reports]", got)
	}
}

func TestPurgeOrderChildrenFirst(t *testing.T) {
	index := buildChildIndex(testForest(time.Now()))
	plan := purgeOrder(collectSubtree("root", index))

	pos := map[string]int{}
	for i, id := range plan {
		pos[id] = i
	}
	if pos["reports"] > pos["docs"] {
		t.Errorf("reports must be purged before docs: %v", plan)
	}
	if pos["docs"] > pos["root"] || pos["pics"] > pos["root"] {
		t.Errorf("root must be purged last: %v", plan)
	}
	if plan[len(plan)-1] != "root" {
		t.Errorf("plan must end with the root: %v", plan)
	}
}

func TestTrashVisibleFoldersTopmostOnly(t *testing.T) {
	now := time.Now()
	folders := []models.Folder{
		testFolder("root", nil, true, now),
		testFolder("docs", strPtr("root"), true, now.Add(time.Minute)),
		testFolder("reports", strPtr("docs"), true, now.Add(2*time.Minute)),
		testFolder("side", nil, false, now.Add(3*time.Minute)),
	}

	visible := trashVisibleFolders(folders)
	if len(visible) != 1 || visible[0].ID != "root" {
		t.Errorf("visible = %v, want only root", visible)
	}
}

func TestTrashVisibleFoldersIndependentDeletes(t *testing.T) {
	now := time.Now()
	folders := []models.Folder{
		testFolder("root", nil, false, now),
		testFolder("docs", strPtr("root"), true, now.Add(time.Minute)),
		testFolder("pics", strPtr("root"), true, now.Add(2*time.Minute)),
	}

	visible := trashVisibleFolders(folders)
	if len(visible) != 2 {
		t.Fatalf("visible = %v, want both docs and pics", visible)
	}
	// newest first
	if visible[0].ID != "pics" || visible[1].ID != "docs" {
		t.Errorf("order = [%s %s], want [pics docs]", visible[0].ID, visible[1].ID)
	}
}

func TestTrashVisibleFilesHiddenInsideDeletedFolder(t *testing.T) {
	now := time.Now()
	folders := []models.Folder{
		testFolder("docs", nil, true, now),
		testFolder("pics", nil, false, now),
	}
	files := []models.File{
		testFile("a", strPtr("docs"), true, now),         // folder trashed too: hidden
		testFile("b", strPtr("pics"), true, now.Add(1)),  // folder alive: visible
		testFile("c", nil, true, now.Add(2)),             // root file: visible
		testFile("d", strPtr("pics"), false, now.Add(3)), // not deleted at all
	}

	visible := trashVisibleFiles(files, folders)
	if len(visible) != 2 {
		t.Fatalf("visible = %v, want [c b]", visible)
	}
	if visible[0].ID != "c" || visible[1].ID != "b" {
		t.Errorf("order = [%s %s], want [c b]", visible[0].ID, visible[1].ID)
	}
}
