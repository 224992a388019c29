package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestControlScanner_FindControls(t *testing.T) {
	scanner := NewControlScanner()

	tmpDir, err := os.MkdirTemp("", "cvr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testFile := filepath.Join(tmpDir, "ssh_spec.rb")
	content := `# SSH server configuration checks

control 'ssh-01' do
  impact 1.0
  title 'Server: set protocol version to SSHv2'
  describe sshd_config do
    its('Protocol') { should eq '2' }
  end
end

control "ssh-02" do
  title 'Disable root login'
end

control 'ssh-01' do
  # duplicate id, should be reported once
end

describe port(22) do
  it { should be_listening }
end
`
	if err := os.WriteFile(testFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	t.Run("finds declared controls", func(t *testing.T) {
		controls, err := scanner.FindControls(testFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(controls) != 2 {
			t.Fatalf("expected 2 controls, got %d: %v", len(controls), controls)
		}
		if controls[0] != "ssh-01" || controls[1] != "ssh-02" {
			t.Errorf("expected sorted [ssh-01 ssh-02], got %v", controls)
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := scanner.FindControls("/non/existent/file.rb")
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})
}
