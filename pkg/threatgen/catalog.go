package threatgen

import "avconsole/pkg/domain"

// template is one catalog entry the generator samples from. Name parts are
// joined as "<Family>.AndroidOS.<suffix>".
type template struct {
	family      string
	typ         domain.ThreatType
	description string
	severity    domain.Severity
	suffixes    []string
}

// catalog holds one canned template per threat type. The descriptions mirror
// what the console shows users for each detection class.
var catalog = []template{
	{
		family:      "Trojan",
		typ:         domain.ThreatTypeTrojan,
		description: "A trojan running in the background that steals user credentials and personal data.",
		severity:    domain.SeverityHigh,
		suffixes:    []string{"Agent", "Boogr", "Hqwar", "Triada"},
	},
	{
		family:      "Virus",
		typ:         domain.ThreatTypeVirus,
		description: "A virus making unwanted system modifications that degrade device performance.",
		severity:    domain.SeverityMedium,
		suffixes:    []string{"Temper", "Commwarrior", "Duts"},
	},
	{
		family:      "Spyware",
		typ:         domain.ThreatTypeSpyware,
		description: "Spyware tracking the user's location and personal information and exfiltrating it.",
		severity:    domain.SeverityHigh,
		suffixes:    []string{"Tracker", "Pegasus", "FinSpy"},
	},
	{
		family:      "Adware",
		typ:         domain.ThreatTypeAdware,
		description: "Adware displaying intrusive advertisements and profiling user behavior.",
		severity:    domain.SeverityMedium,
		suffixes:    []string{"Ewind", "BatMobi", "Loead"},
	},
	{
		family:      "Ransomware",
		typ:         domain.ThreatTypeRansomware,
		description: "Ransomware that encrypts user files and demands payment for their release.",
		severity:    domain.SeverityHigh,
		suffixes:    []string{"Congur", "Fusob", "Svpeng"},
	},
	{
		family:      "Worm",
		typ:         domain.ThreatTypeWorm,
		description: "A self-replicating worm spreading over network connections.",
		severity:    domain.SeverityMedium,
		suffixes:    []string{"Selfmite", "Samsapo", "Obad"},
	},
	{
		family:      "Rootkit",
		typ:         domain.ThreatTypeRootkit,
		description: "A rootkit hiding at the system level, designed to evade detection.",
		severity:    domain.SeverityHigh,
		suffixes:    []string{"Oldboot", "Mempodroid", "Gooligan"},
	},
	{
		family:      "Keylogger",
		typ:         domain.ThreatTypeKeylogger,
		description: "A keylogger recording keystrokes and leaking them to a remote server.",
		severity:    domain.SeverityHigh,
		suffixes:    []string{"Ahmyth", "Spynote", "Droidwatcher"},
	},
	{
		family:      "Backdoor",
		typ:         domain.ThreatTypeBackdoor,
		description: "A backdoor granting remote access and undermining system security.",
		severity:    domain.SeverityHigh,
		suffixes:    []string{"Mirai", "GhostCtrl", "Androrat"},
	},
	{
		family:      "PUP",
		typ:         domain.ThreatTypePUP,
		description: "A potentially unwanted program that may degrade system performance.",
		severity:    domain.SeverityLow,
		suffixes:    []string{"Downloader", "Riskware", "Bundler"},
	},
	{
		family:      "Botnet",
		typ:         domain.ThreatTypeBotnet,
		description: "A botnet client enrolling the device into a remotely controlled network.",
		severity:    domain.SeverityHigh,
		suffixes:    []string{"Chamois", "Viking", "Geost"},
	},
}

// filePaths is the pool of plausible on-device locations a detection is
// attributed to. Roughly 30% of generated threats have no path at all.
var filePaths = []string{
	"/storage/emulated/0/Download/suspicious_file.apk",
	"/storage/emulated/0/WhatsApp/Media/suspicious_image.jpg",
	"/storage/emulated/0/DCIM/Camera/suspicious_video.mp4",
	"/data/app/com.suspicious.app-1/base.apk",
	"/data/data/com.suspicious.app/shared_prefs/config.xml",
}
