package console

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/creack/pty"
)

// shellOutputCap bounds how much of a `!command`'s output is kept.
const shellOutputCap = 64 * 1024

// shellTimeout kills a `!command` that doesn't finish promptly.
const shellTimeout = 10 * time.Second

// exec dispatches one console command line. Integration failures (markdown,
// highlighting, shell) land in the scrollback, never in the caller.
func (c *Console) exec(line string) tea.Cmd {
	if strings.HasPrefix(line, "!") {
		return c.runShell(strings.TrimSpace(line[1:]))
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		c.cmdHelp()
	case "windows":
		c.cmdWindows()
	case "spawn":
		c.cmdSpawn(args)
	case "close":
		c.cmdClose(args)
	case "md":
		c.cmdMarkdown(args)
	case "hl":
		c.cmdHighlight(args)
	default:
		c.Errorln(fmt.Sprintf("unknown command %q. Type `help`.", cmd))
	}
	return nil
}

func (c *Console) cmdHelp() {
	c.Println(strings.Join([]string{
		"Commands:",
		"  help             show this help",
		"  windows          list open windows",
		"  spawn <id>       open a panel by template id",
		"  close <win-id>   close a window",
		"  md <file>        render a markdown file",
		"  hl <file>        syntax-highlight a file",
		"  !<command>       run a shell command",
	}, "\n"))

	ids := c.host.TemplateIDs()
	sort.Strings(ids)
	c.Println("Panels: " + strings.Join(ids, ", "))
}

func (c *Console) cmdWindows() {
	wins := c.host.Windows()
	if len(wins) == 0 {
		c.Println("no windows open")
		return
	}
	for _, w := range wins {
		c.Println(fmt.Sprintf("  %-8s %-20s %-14s stack=%d", w.ID, w.Title, w.Placement, w.Stack))
	}
}

func (c *Console) cmdSpawn(args []string) {
	if len(args) != 1 {
		c.Errorln("usage: spawn <template-id>")
		return
	}
	id, err := c.host.Spawn(args[0])
	if err != nil {
		c.Errorln("spawn: " + err.Error())
		return
	}
	c.Println("spawned " + id)
}

func (c *Console) cmdClose(args []string) {
	if len(args) != 1 {
		c.Errorln("usage: close <window-id>")
		return
	}
	if err := c.host.Close(args[0]); err != nil {
		c.Errorln("close: " + err.Error())
		return
	}
	c.Println("closed " + args[0])
}

// cmdMarkdown renders a markdown file through glamour. Best effort: on any
// failure the raw text (or the error) goes to the scrollback.
func (c *Console) cmdMarkdown(args []string) {
	if len(args) != 1 {
		c.Errorln("usage: md <file>")
		return
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		c.Errorln("md: " + err.Error())
		return
	}

	width := c.width
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		c.debugf("glamour init failed: %v", err)
		c.Println(string(raw))
		return
	}
	out, err := r.Render(string(raw))
	if err != nil {
		c.debugf("glamour render failed: %v", err)
		c.Println(string(raw))
		return
	}
	c.Println(out)
}

// cmdHighlight syntax-highlights a file through chroma, guessing the lexer
// from the filename. Best effort: falls back to the raw text.
func (c *Console) cmdHighlight(args []string) {
	if len(args) != 1 {
		c.Errorln("usage: hl <file>")
		return
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		c.Errorln("hl: " + err.Error())
		return
	}

	lexerName := ""
	if l := lexers.Match(args[0]); l != nil {
		lexerName = l.Config().Name
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, string(raw), lexerName, "terminal256", "monokai"); err != nil {
		c.debugf("chroma highlight failed: %v", err)
		c.Println(string(raw))
		return
	}
	c.Println(buf.String())
}

// runShell executes a command under a pty (so tools see a terminal) and
// delivers the captured output as a message. The desktop stays responsive
// while the command runs.
func (c *Console) runShell(command string) tea.Cmd {
	if command == "" {
		c.Errorln("usage: !<command>")
		return nil
	}
	return func() tea.Msg {
		cmd := exec.Command("sh", "-c", command)
		f, err := pty.Start(cmd)
		if err != nil {
			return shellOutputMsg{command: command, err: err}
		}
		defer f.Close()

		done := make(chan struct{})
		go func() {
			select {
			case <-done:
			case <-time.After(shellTimeout):
				_ = cmd.Process.Kill()
			}
		}()

		out, _ := io.ReadAll(io.LimitReader(f, shellOutputCap))
		err = cmd.Wait()
		close(done)

		return shellOutputMsg{
			command: command,
			output:  strings.TrimRight(string(out), "\r\n"),
			err:     err,
		}
	}
}
