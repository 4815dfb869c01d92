package config

// DefaultColour is the key every colour table must carry.
const DefaultColour = "default"

var colourGroups = []struct {
	colour   string
	commands []string
}{
	{"silver", []string{DefaultColour}},
	// web & communication
	{"palevioletred3", []string{"NetworkManager", "curl", "httpd", "mosquitto", "nginx", "openvpn", "wget"}},
	// databases
	{"orchid", []string{"mysql", "sqlite3"}},
	// languages
	{"palegreen3", []string{"erl", "java", "miniperl", "ocaml", "perl", "php", "python", "python2.5", "python2.6", "python3", "ruby", "sbcl"}},
	// user
	{"olivedrab3", []string{"emacs", "screen", "ssh", "tmux", "vi", "vim"}},
	// compiler
	{"peachpuff3", []string{"clang", "clang++", "g++", "gcc", "gdb", "gdbserver", "ld", "lldb"}},
	// other
	{"skyblue3", []string{"imapd", "master", "nrpe", "pickup", "postgres", "qmgr", "rrdtool", "sendmail", "smtp", "zabbix", "zabbix_agentd"}},
	// highlight
	{"lightsalmon", []string{"bcc", "bpf", "htop", "iperf", "perf", "sysbench", "top"}},
	// shell scripting
	{"lightblue3", []string{"awk", "basename", "bc", "cat", "cut", "date", "dc", "dirname", "gawk", "ggrep", "grep", "head", "hostname", "sed", "sleep", "tail", "uname", "wc"}},
	// custom
	{"royalblue", []string{"heartbeat"}},
	// system
	{"paleturquoise3", []string{
		"-bash", "-zsh", "<defunct>", "bash", "cron", "devfsadmd", "dlmgmtd", "fmd", "fsflush",
		"in.ndpd", "inetd", "init", "kcfd", "ldap_cachemgr", "lockd", "login", "nscd", "ntpd",
		"pageout", "picld", "poold", "ps", "rcapd", "rotatelogs", "rpcbind", "sac", "sh", "snmpd",
		"sort", "sshd", "statd", "syseventd", "syslogd", "systemd", "ttymod", "ttymon", "utmpd",
		"zlogin", "zoneadmd", "zsched", "zsh",
	}},
}

// DefaultColours returns a fresh copy of the built-in command colour table.
// Callers may modify the result freely.
func DefaultColours() map[string]string {
	colours := make(map[string]string, 160)
	for _, g := range colourGroups {
		for _, c := range g.commands {
			colours[c] = g.colour
		}
	}
	return colours
}
