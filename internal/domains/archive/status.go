package archive

// Status enums are closed sets validated on every write; an unrecognized
// value is a validation failure, never stored.

type WatchStatus string

const (
	WatchPlanned   WatchStatus = "planned"
	WatchWatching  WatchStatus = "watching"
	WatchCompleted WatchStatus = "completed"
	WatchDropped   WatchStatus = "dropped"
)

func (s WatchStatus) Valid() bool {
	switch s {
	case WatchPlanned, WatchWatching, WatchCompleted, WatchDropped:
		return true
	}
	return false
}

type ReadingStatus string

const (
	ReadingPlanned   ReadingStatus = "planned"
	ReadingReading   ReadingStatus = "reading"
	ReadingCompleted ReadingStatus = "completed"
	ReadingDropped   ReadingStatus = "dropped"
)

func (s ReadingStatus) Valid() bool {
	switch s {
	case ReadingPlanned, ReadingReading, ReadingCompleted, ReadingDropped:
		return true
	}
	return false
}

type GameStatus string

const (
	GamePlanned   GameStatus = "planned"
	GamePlaying   GameStatus = "playing"
	GameCompleted GameStatus = "completed"
	GameDropped   GameStatus = "dropped"
)

func (s GameStatus) Valid() bool {
	switch s {
	case GamePlanned, GamePlaying, GameCompleted, GameDropped:
		return true
	}
	return false
}

type ListenStatus string

const (
	ListenQueued    ListenStatus = "queued"
	ListenListening ListenStatus = "listening"
	ListenFavorite  ListenStatus = "favorite"
	ListenArchived  ListenStatus = "archived"
)

func (s ListenStatus) Valid() bool {
	switch s {
	case ListenQueued, ListenListening, ListenFavorite, ListenArchived:
		return true
	}
	return false
}

type CampaignStatus string

const (
	CampaignPlanned   CampaignStatus = "planned"
	CampaignOngoing   CampaignStatus = "ongoing"
	CampaignFinished  CampaignStatus = "finished"
	CampaignAbandoned CampaignStatus = "abandoned"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignPlanned, CampaignOngoing, CampaignFinished, CampaignAbandoned:
		return true
	}
	return false
}
