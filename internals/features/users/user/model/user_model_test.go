// internals/features/users/user/model/user_model_test.go
package model

import "testing"

func TestUserLevelScanNormalizes(t *testing.T) {
	tests := []struct {
		in   interface{}
		want UserLevel
	}{
		{"CHRISTIAN", LevelChristian},
		{"Vip", LevelVIP},
		{[]byte("New_Friend"), LevelNewFriend},
	}
	for _, tt := range tests {
		var l UserLevel
		if err := l.Scan(tt.in); err != nil {
			t.Fatalf("Scan(%v): %v", tt.in, err)
		}
		if l != tt.want {
			t.Errorf("Scan(%v) = %q, want %q", tt.in, l, tt.want)
		}
	}
}

func TestUserRoleValueLowercases(t *testing.T) {
	v, err := UserRole("Branch_Leader").Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "branch_leader" {
		t.Errorf("Value() = %v", v)
	}
}
