//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sys/unix"
)

type TermSize struct {
	WSRow, WSCol       uint
	WSXPixel, WSYPixel uint
}

func GetTermSize() (TermSize, error) {
	var err error
	var f *os.File
	if f, err = os.OpenFile("/dev/tty", unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0666); err == nil {
		defer f.Close()
		var sz *unix.Winsize
		if sz, err = unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil {
			if sz.Xpixel == 0 && sz.Ypixel == 0 && os.Getenv("TERM") == "xterm-kitty" {
				// Kitty reports no pixel size over the ioctl; ask with
				// the CSI 14 t escape code instead.
				state, err := terminal.MakeRaw(int(f.Fd()))
				if err == nil {
					defer terminal.Restore(int(f.Fd()), state) // ignoring error
					fmt.Printf("\033[14t")
					b := make([]byte, 1)
					_, err := os.Stdin.Read(b)
					if err == nil && b[0] == 033 {
						// The reply is <ESC>[4;<height>;<width>t.
						reader := bufio.NewReader(os.Stdin)
						s, err := reader.ReadString('t')
						if err == nil {
							re := regexp.MustCompile(`\[4;(\d+);(\d+)t`)
							matches := re.FindStringSubmatch(s)
							if len(matches) == 3 { // 0: full match, 1: height, 2: width
								height, errH := strconv.Atoi(matches[1])
								width, errW := strconv.Atoi(matches[2])
								if errH == nil && errW == nil {
									sz.Xpixel = uint16(width)
									sz.Ypixel = uint16(height)
								}
							}
						}
					}
				}
			}
			return TermSize{WSRow: uint(sz.Row), WSCol: uint(sz.Col), WSXPixel: uint(sz.Xpixel), WSYPixel: uint(sz.Ypixel)}, nil
		}
	}
	var w, h int
	if w, h, err = terminal.GetSize(0); err == nil { // or int(os.Stdin.Fd())
		return TermSize{WSRow: uint(w), WSCol: uint(h)}, nil
	}
	return TermSize{}, err
}
