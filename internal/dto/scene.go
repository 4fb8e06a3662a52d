package dto

type CreateSceneRequest struct {
	VehicleID         string  `json:"vehicle_id"`
	FCDPath           string  `json:"fcd_path"`
	NetPath           string  `json:"net_path"`
	TimeStart         float64 `json:"time_start"`
	TimeEnd           float64 `json:"time_end,omitempty"`
	CameraSetting     string  `json:"camera_setting,omitempty"`
	AgentClipDistance float64 `json:"agent_clip_distance,omitempty"`
	MapClipDistance   float64 `json:"map_clip_distance,omitempty"`
	StreetView        *bool   `json:"streetview,omitempty"`
}

type SceneViewResponse struct {
	Name    string  `json:"name"`
	Heading float64 `json:"heading"`
	FOV     int     `json:"fov"`
	Text    string  `json:"text,omitempty"`
	Error   string  `json:"error,omitempty"`
}

type SceneResponse struct {
	ID            string              `json:"id"`
	VehicleID     string              `json:"vehicle_id"`
	TimeStart     float64             `json:"time_start"`
	CameraSetting string              `json:"camera_setting"`
	Found         bool                `json:"found"`
	Lon           float64             `json:"lon,omitempty"`
	Lat           float64             `json:"lat,omitempty"`
	Heading       float64             `json:"heading,omitempty"`
	TimeOfDay     string              `json:"time_of_day,omitempty"`
	Combined      string              `json:"combined"`
	FailedViews   []string            `json:"failed_views,omitempty"`
	Views         []SceneViewResponse `json:"views,omitempty"`
	CreatedAt     string              `json:"created_at"`
}

type SceneListResponse struct {
	Scenes []SceneResponse `json:"scenes"`
}
