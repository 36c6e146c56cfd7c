package pbs2slurm

import (
	"reflect"
	"testing"
)

func TestMatchDirective(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		wantKind   DirectiveKind
		wantFields map[string]string
	}{
		{
			name:       "queue",
			input:      "#PBS -q normal\n",
			wantKind:   DirectiveQueue,
			wantFields: map[string]string{"queue": "normal"},
		},
		{
			name:       "job name",
			input:      "#PBS -N myjob\n",
			wantKind:   DirectiveJobName,
			wantFields: map[string]string{"name": "myjob"},
		},
		{
			name:       "job name with CRLF terminator",
			input:      "#PBS -N myjob\r\n",
			wantKind:   DirectiveJobName,
			wantFields: map[string]string{"name": "myjob"},
		},
		{
			name:       "account",
			input:      "#PBS -A VR0042\n",
			wantKind:   DirectiveAccount,
			wantFields: map[string]string{"account": "VR0042"},
		},
		{
			name:       "procs without tasks per node",
			input:      "#PBS -l procs=16\n",
			wantKind:   DirectiveProcessCount,
			wantFields: map[string]string{"procs": "16"},
		},
		{
			name:       "nodes with ppn",
			input:      "#PBS -l nodes=4, ppn=2\n",
			wantKind:   DirectiveProcessCount,
			wantFields: map[string]string{"procs": "4", "tasks_per_node": "2"},
		},
		{
			name:       "procs with tpn",
			input:      "#PBS -l procs=8,tpn=4\n",
			wantKind:   DirectiveProcessCount,
			wantFields: map[string]string{"procs": "8", "tasks_per_node": "4"},
		},
		{
			name:       "pvmem",
			input:      "#PBS -l pvmem=10gb\n",
			wantKind:   DirectivePerVirtualMemory,
			wantFields: map[string]string{"pvmem": "10", "pvmemunit": "gb"},
		},
		{
			name:       "mem",
			input:      "#PBS -l mem=500mb\n",
			wantKind:   DirectiveMemory,
			wantFields: map[string]string{"mem": "500", "memunit": "mb"},
		},
		{
			name:     "walltime with days",
			input:    "#PBS -l walltime=1:02:03:04\n",
			wantKind: DirectiveWalltime,
			wantFields: map[string]string{
				"days": "1", "hours": "02", "mins": "03", "secs": "04",
			},
		},
		{
			name:       "walltime minutes and seconds only",
			input:      "#PBS -l walltime=05:06\n",
			wantKind:   DirectiveWalltime,
			wantFields: map[string]string{"mins": "05", "secs": "06"},
		},
		{
			name:       "walltime bare seconds",
			input:      "#PBS -l walltime=45\n",
			wantKind:   DirectiveWalltime,
			wantFields: map[string]string{"secs": "45"},
		},
		{
			name:       "email events",
			input:      "#PBS -m abe\n",
			wantKind:   DirectiveEmailEvents,
			wantFields: map[string]string{"email_events": "abe"},
		},
		{
			name:       "email address",
			input:      "#PBS -M user@example.org\n",
			wantKind:   DirectiveEmailAddress,
			wantFields: map[string]string{"email_address": "user@example.org"},
		},
		{
			name:       "output path",
			input:      "#PBS -o /scratch/out.log\n",
			wantKind:   DirectiveOutputPath,
			wantFields: map[string]string{"outpath": "/scratch/out.log"},
		},
		{
			name:       "error path",
			input:      "#PBS -e /scratch/err.log\n",
			wantKind:   DirectiveErrorPath,
			wantFields: map[string]string{"errpath": "/scratch/err.log"},
		},
		{
			name:       "workdir change",
			input:      "cd $PBS_O_WORKDIR\n",
			wantKind:   DirectiveWorkdirChange,
			wantFields: map[string]string{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := MatchDirective(tc.input)
			if d == nil {
				t.Fatalf("no match for %q", tc.input)
			}
			if d.Kind != tc.wantKind {
				t.Fatalf("kind = %v, want %v", d.Kind, tc.wantKind)
			}
			if !reflect.DeepEqual(d.Fields, tc.wantFields) {
				t.Fatalf("fields = %v, want %v", d.Fields, tc.wantFields)
			}
		})
	}
}

func TestMatchDirectiveNoMatch(t *testing.T) {
	lines := []string{
		"echo hello\n",
		"#comment\n",
		"# PBS -q normal\n",
		"  #PBS -q normal\n", // not anchored at line start
		"#PBS\n",
		"#PBS -x whatever\n",
		"#PBS -m z\n", // z is not one of a, b, e
		"#PBS -m n\n", // the mail-suppression option is unsupported
		"#PBS -l walltime=\n",
		"#PBS -l select=2\n",
		"cd $HOME\n",
		"module load gcc\n",
		"",
	}
	for _, line := range lines {
		if d := MatchDirective(line); d != nil {
			t.Errorf("MatchDirective(%q) = %v, want no match", line, d.Kind)
		}
	}
}

// Already-converted scripts must come through untouched, so none of the
// recognizers may fire on Slurm notation.
func TestMatchDirectiveIgnoresSlurmNotation(t *testing.T) {
	lines := []string{
		"#SBATCH -p main\n",
		"#SBATCH --exclusive\n",
		"#SBATCH --job-name=\"myjob\"\n",
		"#SBATCH --ntasks=16\n",
		"#SBATCH --mem-per-cpu=1024\n",
		"#SBATCH --time=1-02:03:04\n",
		"#SBATCH --mail-type=FAIL\n",
	}
	for _, line := range lines {
		if d := MatchDirective(line); d != nil {
			t.Errorf("MatchDirective(%q) = %v, want no match", line, d.Kind)
		}
	}
}

func TestMatchDirectiveOptionalFieldAbsent(t *testing.T) {
	d := MatchDirective("#PBS -l procs=16\n")
	if d == nil {
		t.Fatal("no match")
	}
	if _, ok := d.Field("tasks_per_node"); ok {
		t.Error("tasks_per_node should be absent, not empty")
	}
	if v, ok := d.Field("procs"); !ok || v != "16" {
		t.Errorf("procs = %q, %v; want \"16\", true", v, ok)
	}
}

// No trailing anchor: extra characters after a valid directive prefix do not
// defeat the match.
func TestMatchDirectivePrefixOnly(t *testing.T) {
	d := MatchDirective("#PBS -m abet\n")
	if d == nil || d.Kind != DirectiveEmailEvents {
		t.Fatalf("want EmailEvents match, got %v", d)
	}
	if v := d.Fields["email_events"]; v != "abe" {
		t.Errorf("email_events = %q, want \"abe\"", v)
	}
}
