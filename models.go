package transmission

// Torrent is the field bag returned by torrent-get. Every field is optional:
// the daemon only populates the keys the query asked for, so consumers must
// treat zero values as "not requested" rather than "empty".
type Torrent struct {
	ID                      int64         `json:"id"`
	ActivityDate            int64         `json:"activityDate"`
	AddedDate               int64         `json:"addedDate"`
	BandwidthPriority       int64         `json:"bandwidthPriority"`
	Comment                 string        `json:"comment"`
	CorruptEver             int64         `json:"corruptEver"`
	Creator                 string        `json:"creator"`
	DateCreated             int64         `json:"dateCreated"`
	DesiredAvailable        int64         `json:"desiredAvailable"`
	DoneDate                int64         `json:"doneDate"`
	DownloadDir             string        `json:"downloadDir"`
	DownloadedEver          int64         `json:"downloadedEver"`
	DownloadLimit           int64         `json:"downloadLimit"`
	DownloadLimited         bool          `json:"downloadLimited"`
	Error                   int64         `json:"error"`
	ErrorString             string        `json:"errorString"`
	Eta                     int64         `json:"eta"`
	EtaIdle                 int64         `json:"etaIdle"`
	Files                   []File        `json:"files"`
	FileStats               []FileStat    `json:"fileStats"`
	HashString              string        `json:"hashString"`
	HaveUnchecked           int64         `json:"haveUnchecked"`
	HaveValid               int64         `json:"haveValid"`
	HonorsSessionLimits     bool          `json:"honorsSessionLimits"`
	IsFinished              bool          `json:"isFinished"`
	IsPrivate               bool          `json:"isPrivate"`
	IsStalled               bool          `json:"isStalled"`
	Labels                  []string      `json:"labels"`
	LeftUntilDone           int64         `json:"leftUntilDone"`
	MagnetLink              string        `json:"magnetLink"`
	ManualAnnounceTime      int64         `json:"manualAnnounceTime"`
	MaxConnectedPeers       int64         `json:"maxConnectedPeers"`
	MetadataPercentComplete float64       `json:"metadataPercentComplete"`
	Name                    string        `json:"name"`
	PeerLimit               int64         `json:"peer-limit"`
	Peers                   []Peer        `json:"peers"`
	PeersConnected          int64         `json:"peersConnected"`
	PeersFrom               PeersFrom     `json:"peersFrom"`
	PeersGettingFromUs      int64         `json:"peersGettingFromUs"`
	PeersSendingToUs        int64         `json:"peersSendingToUs"`
	PercentDone             float64       `json:"percentDone"`
	Pieces                  string        `json:"pieces"`
	PieceCount              int64         `json:"pieceCount"`
	PieceSize               int64         `json:"pieceSize"`
	Priorities              []int64       `json:"priorities"`
	QueuePosition           int64         `json:"queuePosition"`
	RateDownload            int64         `json:"rateDownload"`
	RateUpload              int64         `json:"rateUpload"`
	RecheckProgress         float64       `json:"recheckProgress"`
	SecondsDownloading      int64         `json:"secondsDownloading"`
	SecondsSeeding          int64         `json:"secondsSeeding"`
	SeedIdleLimit           int64         `json:"seedIdleLimit"`
	SeedIdleMode            int64         `json:"seedIdleMode"`
	SeedRatioLimit          float64       `json:"seedRatioLimit"`
	SeedRatioMode           int64         `json:"seedRatioMode"`
	SizeWhenDone            int64         `json:"sizeWhenDone"`
	StartDate               int64         `json:"startDate"`
	Status                  int64         `json:"status"`
	Trackers                []Tracker     `json:"trackers"`
	TrackerStats            []TrackerStat `json:"trackerStats"`
	TotalSize               int64         `json:"totalSize"`
	TorrentFile             string        `json:"torrentFile"`
	UploadedEver            int64         `json:"uploadedEver"`
	UploadLimit             int64         `json:"uploadLimit"`
	UploadLimited           bool          `json:"uploadLimited"`
	UploadRatio             float64       `json:"uploadRatio"`
	Wanted                  []int64       `json:"wanted"`
	Webseeds                []string      `json:"webseeds"`
	WebseedsSendingToUs     int64         `json:"webseedsSendingToUs"`
}

// Torrent status values.
const (
	StatusStopped      = 0
	StatusCheckWait    = 1
	StatusCheck        = 2
	StatusDownloadWait = 3
	StatusDownload     = 4
	StatusSeedWait     = 5
	StatusSeed         = 6
)

// File describes one file inside a torrent.
type File struct {
	BytesCompleted int64  `json:"bytesCompleted"`
	Length         int64  `json:"length"`
	Name           string `json:"name"`
}

// FileStat describes the mutable per-file state, index-aligned with Files.
type FileStat struct {
	BytesCompleted int64 `json:"bytesCompleted"`
	Wanted         bool  `json:"wanted"`
	Priority       int64 `json:"priority"`
}

// Tracker is a tracker registered on a torrent.
type Tracker struct {
	Announce string `json:"announce"`
	ID       int64  `json:"id"`
	Scrape   string `json:"scrape"`
	Tier     int64  `json:"tier"`
}

// TrackerStat carries announce/scrape statistics for one tracker.
type TrackerStat struct {
	Announce              string `json:"announce"`
	AnnounceState         int64  `json:"announceState"`
	DownloadCount         int64  `json:"downloadCount"`
	HasAnnounced          bool   `json:"hasAnnounced"`
	HasScraped            bool   `json:"hasScraped"`
	Host                  string `json:"host"`
	ID                    int64  `json:"id"`
	IsBackup              bool   `json:"isBackup"`
	LastAnnouncePeerCount int64  `json:"lastAnnouncePeerCount"`
	LastAnnounceResult    string `json:"lastAnnounceResult"`
	LastAnnounceStartTime int64  `json:"lastAnnounceStartTime"`
	LastAnnounceSucceeded bool   `json:"lastAnnounceSucceeded"`
	LastAnnounceTime      int64  `json:"lastAnnounceTime"`
	LastAnnounceTimedOut  bool   `json:"lastAnnounceTimedOut"`
	LastScrapeResult      string `json:"lastScrapeResult"`
	LastScrapeStartTime   int64  `json:"lastScrapeStartTime"`
	LastScrapeSucceeded   bool   `json:"lastScrapeSucceeded"`
	LastScrapeTime        int64  `json:"lastScrapeTime"`
	LastScrapeTimedOut    bool   `json:"lastScrapeTimedOut"`
	LeecherCount          int64  `json:"leecherCount"`
	NextAnnounceTime      int64  `json:"nextAnnounceTime"`
	NextScrapeTime        int64  `json:"nextScrapeTime"`
	Scrape                string `json:"scrape"`
	ScrapeState           int64  `json:"scrapeState"`
	SeederCount           int64  `json:"seederCount"`
	Tier                  int64  `json:"tier"`
}

// Peer describes one connected peer.
type Peer struct {
	Address            string  `json:"address"`
	ClientName         string  `json:"clientName"`
	ClientIsChoked     bool    `json:"clientIsChoked"`
	ClientIsInterested bool    `json:"clientIsInterested"`
	FlagStr            string  `json:"flagStr"`
	IsDownloadingFrom  bool    `json:"isDownloadingFrom"`
	IsEncrypted        bool    `json:"isEncrypted"`
	IsIncoming         bool    `json:"isIncoming"`
	IsUploadingTo      bool    `json:"isUploadingTo"`
	IsUTP              bool    `json:"isUTP"`
	PeerIsChoked       bool    `json:"peerIsChoked"`
	PeerIsInterested   bool    `json:"peerIsInterested"`
	Port               int64   `json:"port"`
	Progress           float64 `json:"progress"`
	RateToClient       int64   `json:"rateToClient"`
	RateToPeer         int64   `json:"rateToPeer"`
}

// PeersFrom counts connected peers by discovery mechanism.
type PeersFrom struct {
	FromCache    int64 `json:"fromCache"`
	FromDht      int64 `json:"fromDht"`
	FromIncoming int64 `json:"fromIncoming"`
	FromLpd      int64 `json:"fromLpd"`
	FromLtep     int64 `json:"fromLtep"`
	FromPex      int64 `json:"fromPex"`
	FromTracker  int64 `json:"fromTracker"`
}

// NewTorrent is the uniform result of TorrentAdd, whether the daemon reported
// the torrent as newly added or as a duplicate of an existing one.
type NewTorrent struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	HashString string `json:"hashString"`
}

// RenamedPath is the result of TorrentRenamePath.
type RenamedPath struct {
	ID   int64  `json:"id"`
	Path string `json:"path"`
	Name string `json:"name"`
}

// SessionInfo is the field bag returned by session-get.
type SessionInfo struct {
	AltSpeedDown              int64   `json:"alt-speed-down"`
	AltSpeedEnabled           bool    `json:"alt-speed-enabled"`
	AltSpeedTimeBegin         int64   `json:"alt-speed-time-begin"`
	AltSpeedTimeDay           int64   `json:"alt-speed-time-day"`
	AltSpeedTimeEnabled       bool    `json:"alt-speed-time-enabled"`
	AltSpeedTimeEnd           int64   `json:"alt-speed-time-end"`
	AltSpeedUp                int64   `json:"alt-speed-up"`
	BlocklistEnabled          bool    `json:"blocklist-enabled"`
	BlocklistSize             int64   `json:"blocklist-size"`
	BlocklistURL              string  `json:"blocklist-url"`
	CacheSizeMB               int64   `json:"cache-size-mb"`
	ConfigDir                 string  `json:"config-dir"`
	DhtEnabled                bool    `json:"dht-enabled"`
	DownloadDir               string  `json:"download-dir"`
	DownloadDirFreeSpace      int64   `json:"download-dir-free-space"`
	DownloadQueueEnabled      bool    `json:"download-queue-enabled"`
	DownloadQueueSize         int64   `json:"download-queue-size"`
	Encryption                string  `json:"encryption"`
	IdleSeedingLimit          int64   `json:"idle-seeding-limit"`
	IdleSeedingLimitEnabled   bool    `json:"idle-seeding-limit-enabled"`
	IncompleteDir             string  `json:"incomplete-dir"`
	IncompleteDirEnabled      bool    `json:"incomplete-dir-enabled"`
	LpdEnabled                bool    `json:"lpd-enabled"`
	PeerLimitGlobal           int64   `json:"peer-limit-global"`
	PeerLimitPerTorrent       int64   `json:"peer-limit-per-torrent"`
	PeerPort                  int64   `json:"peer-port"`
	PeerPortRandomOnStart     bool    `json:"peer-port-random-on-start"`
	PexEnabled                bool    `json:"pex-enabled"`
	PortForwardingEnabled     bool    `json:"port-forwarding-enabled"`
	QueueStalledEnabled       bool    `json:"queue-stalled-enabled"`
	QueueStalledMinutes       int64   `json:"queue-stalled-minutes"`
	RenamePartialFiles        bool    `json:"rename-partial-files"`
	RPCVersion                int64   `json:"rpc-version"`
	RPCVersionMinimum         int64   `json:"rpc-version-minimum"`
	ScriptTorrentDoneEnabled  bool    `json:"script-torrent-done-enabled"`
	ScriptTorrentDoneFilename string  `json:"script-torrent-done-filename"`
	SeedQueueEnabled          bool    `json:"seed-queue-enabled"`
	SeedQueueSize             int64   `json:"seed-queue-size"`
	SeedRatioLimit            float64 `json:"seedRatioLimit"`
	SeedRatioLimited          bool    `json:"seedRatioLimited"`
	SessionID                 string  `json:"session-id"`
	SpeedLimitDown            int64   `json:"speed-limit-down"`
	SpeedLimitDownEnabled     bool    `json:"speed-limit-down-enabled"`
	SpeedLimitUp              int64   `json:"speed-limit-up"`
	SpeedLimitUpEnabled       bool    `json:"speed-limit-up-enabled"`
	StartAddedTorrents        bool    `json:"start-added-torrents"`
	TrashOriginalTorrents     bool    `json:"trash-original-torrent-files"`
	Units                     Units   `json:"units"`
	UtpEnabled                bool    `json:"utp-enabled"`
	Version                   string  `json:"version"`
}

// Units describes the formatting units advertised by the daemon.
type Units struct {
	SpeedUnits  []string `json:"speed-units"`
	SpeedBytes  int64    `json:"speed-bytes"`
	SizeUnits   []string `json:"size-units"`
	SizeBytes   int64    `json:"size-bytes"`
	MemoryUnits []string `json:"memory-units"`
	MemoryBytes int64    `json:"memory-bytes"`
}

// SessionArgs is the mutable subset of the session settings, passed to
// SessionSet. Pointer fields distinguish "leave unchanged" from an explicit
// zero/false.
type SessionArgs struct {
	AltSpeedDown              *int64   `json:"alt-speed-down,omitempty"`
	AltSpeedEnabled           *bool    `json:"alt-speed-enabled,omitempty"`
	AltSpeedTimeBegin         *int64   `json:"alt-speed-time-begin,omitempty"`
	AltSpeedTimeDay           *int64   `json:"alt-speed-time-day,omitempty"`
	AltSpeedTimeEnabled       *bool    `json:"alt-speed-time-enabled,omitempty"`
	AltSpeedTimeEnd           *int64   `json:"alt-speed-time-end,omitempty"`
	AltSpeedUp                *int64   `json:"alt-speed-up,omitempty"`
	BlocklistEnabled          *bool    `json:"blocklist-enabled,omitempty"`
	BlocklistURL              string   `json:"blocklist-url,omitempty"`
	CacheSizeMB               *int64   `json:"cache-size-mb,omitempty"`
	DhtEnabled                *bool    `json:"dht-enabled,omitempty"`
	DownloadDir               string   `json:"download-dir,omitempty"`
	DownloadQueueEnabled      *bool    `json:"download-queue-enabled,omitempty"`
	DownloadQueueSize         *int64   `json:"download-queue-size,omitempty"`
	Encryption                string   `json:"encryption,omitempty"`
	IdleSeedingLimit          *int64   `json:"idle-seeding-limit,omitempty"`
	IdleSeedingLimitEnabled   *bool    `json:"idle-seeding-limit-enabled,omitempty"`
	IncompleteDir             string   `json:"incomplete-dir,omitempty"`
	IncompleteDirEnabled      *bool    `json:"incomplete-dir-enabled,omitempty"`
	LpdEnabled                *bool    `json:"lpd-enabled,omitempty"`
	PeerLimitGlobal           *int64   `json:"peer-limit-global,omitempty"`
	PeerLimitPerTorrent       *int64   `json:"peer-limit-per-torrent,omitempty"`
	PeerPort                  *int64   `json:"peer-port,omitempty"`
	PeerPortRandomOnStart     *bool    `json:"peer-port-random-on-start,omitempty"`
	PexEnabled                *bool    `json:"pex-enabled,omitempty"`
	PortForwardingEnabled     *bool    `json:"port-forwarding-enabled,omitempty"`
	QueueStalledEnabled       *bool    `json:"queue-stalled-enabled,omitempty"`
	QueueStalledMinutes       *int64   `json:"queue-stalled-minutes,omitempty"`
	RenamePartialFiles        *bool    `json:"rename-partial-files,omitempty"`
	ScriptTorrentDoneEnabled  *bool    `json:"script-torrent-done-enabled,omitempty"`
	ScriptTorrentDoneFilename string   `json:"script-torrent-done-filename,omitempty"`
	SeedQueueEnabled          *bool    `json:"seed-queue-enabled,omitempty"`
	SeedQueueSize             *int64   `json:"seed-queue-size,omitempty"`
	SeedRatioLimit            *float64 `json:"seedRatioLimit,omitempty"`
	SeedRatioLimited          *bool    `json:"seedRatioLimited,omitempty"`
	SpeedLimitDown            *int64   `json:"speed-limit-down,omitempty"`
	SpeedLimitDownEnabled     *bool    `json:"speed-limit-down-enabled,omitempty"`
	SpeedLimitUp              *int64   `json:"speed-limit-up,omitempty"`
	SpeedLimitUpEnabled       *bool    `json:"speed-limit-up-enabled,omitempty"`
	StartAddedTorrents        *bool    `json:"start-added-torrents,omitempty"`
	TrashOriginalTorrents     *bool    `json:"trash-original-torrent-files,omitempty"`
	UtpEnabled                *bool    `json:"utp-enabled,omitempty"`
}

// SessionStats is the result of session-stats.
type SessionStats struct {
	ActiveTorrentCount int64 `json:"activeTorrentCount"`
	DownloadSpeed      int64 `json:"downloadSpeed"`
	PausedTorrentCount int64 `json:"pausedTorrentCount"`
	TorrentCount       int64 `json:"torrentCount"`
	UploadSpeed        int64 `json:"uploadSpeed"`
	CumulativeStats    Stats `json:"cumulative-stats"`
	CurrentStats       Stats `json:"current-stats"`
}

// Stats is one bucket of transfer statistics.
type Stats struct {
	UploadedBytes   int64 `json:"uploadedBytes"`
	DownloadedBytes int64 `json:"downloadedBytes"`
	FilesAdded      int64 `json:"filesAdded"`
	SessionCount    int64 `json:"sessionCount"`
	SecondsActive   int64 `json:"secondsActive"`
}

// TorrentAddArgs configures TorrentAdd. Exactly one of Filename or Metainfo
// must be set.
type TorrentAddArgs struct {
	// Filename is a path or URL of a .torrent file, or a magnet URI.
	Filename string `json:"filename,omitempty"`
	// Metainfo is base64-encoded .torrent content.
	Metainfo string `json:"metainfo,omitempty"`

	Cookies           string   `json:"cookies,omitempty"`
	DownloadDir       string   `json:"download-dir,omitempty"`
	Labels            []string `json:"labels,omitempty"`
	Paused            *bool    `json:"paused,omitempty"`
	PeerLimit         *int64   `json:"peer-limit,omitempty"`
	BandwidthPriority *int64   `json:"bandwidthPriority,omitempty"`
	FilesWanted       []int64  `json:"files-wanted,omitempty"`
	FilesUnwanted     []int64  `json:"files-unwanted,omitempty"`
	PriorityHigh      []int64  `json:"priority-high,omitempty"`
	PriorityLow       []int64  `json:"priority-low,omitempty"`
	PriorityNormal    []int64  `json:"priority-normal,omitempty"`
}

// TorrentSetArgs is the mutable subset of per-torrent settings, passed to
// TorrentSet together with a selector.
type TorrentSetArgs struct {
	BandwidthPriority   *int64   `json:"bandwidthPriority,omitempty"`
	DownloadLimit       *int64   `json:"downloadLimit,omitempty"`
	DownloadLimited     *bool    `json:"downloadLimited,omitempty"`
	FilesWanted         []int64  `json:"files-wanted,omitempty"`
	FilesUnwanted       []int64  `json:"files-unwanted,omitempty"`
	HonorsSessionLimits *bool    `json:"honorsSessionLimits,omitempty"`
	Labels              []string `json:"labels,omitempty"`
	Location            string   `json:"location,omitempty"`
	PeerLimit           *int64   `json:"peer-limit,omitempty"`
	PriorityHigh        []int64  `json:"priority-high,omitempty"`
	PriorityLow         []int64  `json:"priority-low,omitempty"`
	PriorityNormal      []int64  `json:"priority-normal,omitempty"`
	QueuePosition       *int64   `json:"queuePosition,omitempty"`
	SeedIdleLimit       *int64   `json:"seedIdleLimit,omitempty"`
	SeedIdleMode        *int64   `json:"seedIdleMode,omitempty"`
	SeedRatioLimit      *float64 `json:"seedRatioLimit,omitempty"`
	SeedRatioMode       *int64   `json:"seedRatioMode,omitempty"`
	TrackerAdd          []string `json:"trackerAdd,omitempty"`
	TrackerRemove       []int64  `json:"trackerRemove,omitempty"`
	UploadLimit         *int64   `json:"uploadLimit,omitempty"`
	UploadLimited       *bool    `json:"uploadLimited,omitempty"`
}
