package registry

// Category display names, in presentation order. The artistic tier is a single
// leading category; the debug tier is partitioned by function.
const (
	CategoryArtistic   = "Artistic"
	CategoryLayers     = "Layer System"
	CategoryCameraPath = "Camera Path"
	CategoryKaleido    = "Kaleidoscope"
	CategoryPattern    = "Pattern Generation"
	CategorySeeds      = "Random Seeds"
	CategoryFOV        = "Field of View"
	CategoryQuality    = "Rendering Quality"
)

// Categories returns every category name in presentation order.
func Categories() []string {
	return []string{
		CategoryArtistic,
		CategoryLayers,
		CategoryCameraPath,
		CategoryKaleido,
		CategoryPattern,
		CategorySeeds,
		CategoryFOV,
		CategoryQuality,
	}
}

// Table returns the full parameter set. Defaults are curated constants picked
// for stable output, not derived from the bounds. Order here is the order
// sequential navigation walks.
func Table() []Descriptor {
	return []Descriptor{
		// Artistic tier: the user-facing creative controls.
		{Key: "fly_speed", Display: "Fly Speed", Tier: TierArtistic, Category: CategoryArtistic, Min: -3.0, Max: 3.0, Step: 0.1, Default: 0.25},
		{Key: "rotation_speed", Display: "Rotation Speed", Tier: TierArtistic, Category: CategoryArtistic, Min: -0.5, Max: 0.5, Step: 0.005, Default: 0.02},
		{Key: "kaleidoscope_segments", Display: "Kaleidoscope Segments", Tier: TierArtistic, Category: CategoryArtistic, Min: 2, Max: 64, Step: 2, Default: 8, Integer: true, Even: true},
		{Key: "truchet_radius", Display: "Truchet Radius", Tier: TierArtistic, Category: CategoryArtistic, Min: -1.0, Max: 1.0, Step: 0.01, Default: 0.35},
		{Key: "center_fill_radius", Display: "Center Fill Radius", Tier: TierArtistic, Category: CategoryArtistic, Min: -2.0, Max: 2.0, Step: 0.01, Default: 0.0},
		{Key: "layer_count", Display: "Layer Count", Tier: TierArtistic, Category: CategoryArtistic, Min: 1, Max: 50, Step: 1, Default: 6, Integer: true},
		{Key: "contrast", Display: "Contrast", Tier: TierArtistic, Category: CategoryArtistic, Min: 0.1, Max: 5.0, Step: 0.05, Default: 1.0},
		{Key: "color_intensity", Display: "Color Intensity", Tier: TierArtistic, Category: CategoryArtistic, Min: 0.0, Max: 3.0, Step: 0.05, Default: 1.0},
		{Key: "color_shift_speed", Display: "Color Shift Speed", Tier: TierArtistic, Category: CategoryArtistic, Min: -2.0, Max: 2.0, Step: 0.01, Default: 0.1},
		{Key: "zoom_level", Display: "Zoom", Tier: TierArtistic, Category: CategoryArtistic, Min: 0.1, Max: 10.0, Step: 0.05, Default: 1.0},
		{Key: "pattern_density", Display: "Pattern Density", Tier: TierArtistic, Category: CategoryArtistic, Min: 0.1, Max: 4.0, Step: 0.05, Default: 1.0},
		{Key: "glow_intensity", Display: "Glow", Tier: TierArtistic, Category: CategoryArtistic, Min: 0.0, Max: 2.0, Step: 0.01, Default: 0.3},
		{Key: "line_thickness", Display: "Line Thickness", Tier: TierArtistic, Category: CategoryArtistic, Min: 0.001, Max: 0.5, Step: 0.001, Default: 0.05},
		{Key: "depth_fade", Display: "Depth Fade", Tier: TierArtistic, Category: CategoryArtistic, Min: 0.0, Max: 1.0, Step: 0.01, Default: 0.8},
		{Key: "camera_tilt", Display: "Camera Tilt", Tier: TierArtistic, Category: CategoryArtistic, Min: -1.5, Max: 1.5, Step: 0.01, Default: 0.0},
		{Key: "warp_amount", Display: "Warp", Tier: TierArtistic, Category: CategoryArtistic, Min: -1.0, Max: 1.0, Step: 0.01, Default: 0.0},

		// Layer system.
		{Key: "layer_spacing", Display: "Layer Spacing", Tier: TierDebug, Category: CategoryLayers, Min: 0.01, Max: 2.0, Step: 0.01, Default: 0.4},
		{Key: "layer_offset_x", Display: "Layer Offset X", Tier: TierDebug, Category: CategoryLayers, Min: -2.0, Max: 2.0, Step: 0.01, Default: 0.0},
		{Key: "layer_offset_y", Display: "Layer Offset Y", Tier: TierDebug, Category: CategoryLayers, Min: -2.0, Max: 2.0, Step: 0.01, Default: 0.0},
		{Key: "layer_rotation_step", Display: "Layer Rotation Step", Tier: TierDebug, Category: CategoryLayers, Min: -3.14, Max: 3.14, Step: 0.01, Default: 0.1},
		{Key: "layer_scale_factor", Display: "Layer Scale Factor", Tier: TierDebug, Category: CategoryLayers, Min: 0.5, Max: 2.0, Step: 0.005, Default: 1.05},
		{Key: "layer_fade_start", Display: "Layer Fade Start", Tier: TierDebug, Category: CategoryLayers, Min: 0.0, Max: 1.0, Step: 0.01, Default: 0.2},
		{Key: "layer_fade_end", Display: "Layer Fade End", Tier: TierDebug, Category: CategoryLayers, Min: 0.0, Max: 1.0, Step: 0.01, Default: 0.9},
		{Key: "layer_blend_mode", Display: "Layer Blend Mode", Tier: TierDebug, Category: CategoryLayers, Min: 0, Max: 3, Step: 1, Default: 0, Integer: true},
		{Key: "layer_shuffle", Display: "Layer Shuffle", Tier: TierDebug, Category: CategoryLayers, Min: 0.0, Max: 1.0, Step: 0.01, Default: 0.0},

		// Camera path.
		{Key: "path_curvature", Display: "Path Curvature", Tier: TierDebug, Category: CategoryCameraPath, Min: -2.0, Max: 2.0, Step: 0.01, Default: 0.5},
		{Key: "path_frequency_x", Display: "Path Frequency X", Tier: TierDebug, Category: CategoryCameraPath, Min: 0.0, Max: 5.0, Step: 0.01, Default: 0.3},
		{Key: "path_frequency_y", Display: "Path Frequency Y", Tier: TierDebug, Category: CategoryCameraPath, Min: 0.0, Max: 5.0, Step: 0.01, Default: 0.2},
		{Key: "path_amplitude_x", Display: "Path Amplitude X", Tier: TierDebug, Category: CategoryCameraPath, Min: 0.0, Max: 4.0, Step: 0.05, Default: 1.0},
		{Key: "path_amplitude_y", Display: "Path Amplitude Y", Tier: TierDebug, Category: CategoryCameraPath, Min: 0.0, Max: 4.0, Step: 0.05, Default: 0.6},
		{Key: "path_phase", Display: "Path Phase", Tier: TierDebug, Category: CategoryCameraPath, Min: 0.0, Max: 6.283, Step: 0.01, Default: 0.0},
		{Key: "path_twist", Display: "Path Twist", Tier: TierDebug, Category: CategoryCameraPath, Min: -2.0, Max: 2.0, Step: 0.01, Default: 0.0},
		{Key: "look_ahead", Display: "Look Ahead", Tier: TierDebug, Category: CategoryCameraPath, Min: 0.0, Max: 5.0, Step: 0.05, Default: 1.5},
		{Key: "roll_speed", Display: "Roll Speed", Tier: TierDebug, Category: CategoryCameraPath, Min: -1.0, Max: 1.0, Step: 0.005, Default: 0.0},

		// Kaleidoscope internals.
		{Key: "kaleido_angle_offset", Display: "Kaleido Angle Offset", Tier: TierDebug, Category: CategoryKaleido, Min: 0.0, Max: 6.283, Step: 0.01, Default: 0.0},
		{Key: "kaleido_radial_shift", Display: "Kaleido Radial Shift", Tier: TierDebug, Category: CategoryKaleido, Min: -1.0, Max: 1.0, Step: 0.005, Default: 0.0},
		{Key: "kaleido_spiral", Display: "Kaleido Spiral", Tier: TierDebug, Category: CategoryKaleido, Min: -1.0, Max: 1.0, Step: 0.005, Default: 0.0},
		{Key: "kaleido_center_x", Display: "Kaleido Center X", Tier: TierDebug, Category: CategoryKaleido, Min: -1.0, Max: 1.0, Step: 0.005, Default: 0.0},
		{Key: "kaleido_center_y", Display: "Kaleido Center Y", Tier: TierDebug, Category: CategoryKaleido, Min: -1.0, Max: 1.0, Step: 0.005, Default: 0.0},
		{Key: "kaleido_feather", Display: "Kaleido Feather", Tier: TierDebug, Category: CategoryKaleido, Min: 0.0, Max: 0.05, Step: 0.0005, Default: 0.002},
		{Key: "kaleido_zoom_pulse", Display: "Kaleido Zoom Pulse", Tier: TierDebug, Category: CategoryKaleido, Min: 0.0, Max: 1.0, Step: 0.005, Default: 0.0},

		// Truchet pattern generation.
		{Key: "truchet_probability", Display: "Truchet Probability", Tier: TierDebug, Category: CategoryPattern, Min: 0.0, Max: 1.0, Step: 0.01, Default: 0.5},
		{Key: "cell_subdivision", Display: "Cell Subdivision", Tier: TierDebug, Category: CategoryPattern, Min: 1, Max: 8, Step: 1, Default: 2, Integer: true},
		{Key: "arc_weight", Display: "Arc Weight", Tier: TierDebug, Category: CategoryPattern, Min: 0.0, Max: 1.0, Step: 0.01, Default: 0.6},
		{Key: "line_weight", Display: "Line Weight", Tier: TierDebug, Category: CategoryPattern, Min: 0.0, Max: 1.0, Step: 0.01, Default: 0.4},
		{Key: "dot_radius", Display: "Dot Radius", Tier: TierDebug, Category: CategoryPattern, Min: 0.0, Max: 0.5, Step: 0.005, Default: 0.08},
		{Key: "pattern_rotation", Display: "Pattern Rotation", Tier: TierDebug, Category: CategoryPattern, Min: 0.0, Max: 6.283, Step: 0.01, Default: 0.0},
		{Key: "pattern_skew", Display: "Pattern Skew", Tier: TierDebug, Category: CategoryPattern, Min: -1.0, Max: 1.0, Step: 0.005, Default: 0.0},
		{Key: "tile_scale", Display: "Tile Scale", Tier: TierDebug, Category: CategoryPattern, Min: 0.1, Max: 8.0, Step: 0.05, Default: 1.0},
		{Key: "curve_smoothness", Display: "Curve Smoothness", Tier: TierDebug, Category: CategoryPattern, Min: 0.0, Max: 1.0, Step: 0.01, Default: 0.5},

		// Random seeds.
		{Key: "seed_pattern", Display: "Pattern Seed", Tier: TierDebug, Category: CategorySeeds, Min: 0, Max: 9999, Step: 1, Default: 1337, Integer: true},
		{Key: "seed_color", Display: "Color Seed", Tier: TierDebug, Category: CategorySeeds, Min: 0, Max: 9999, Step: 1, Default: 42, Integer: true},
		{Key: "seed_rotation", Display: "Rotation Seed", Tier: TierDebug, Category: CategorySeeds, Min: 0, Max: 9999, Step: 1, Default: 7, Integer: true},
		{Key: "seed_offset", Display: "Offset Seed", Tier: TierDebug, Category: CategorySeeds, Min: 0, Max: 9999, Step: 1, Default: 0, Integer: true},
		{Key: "random_flip_rate", Display: "Random Flip Rate", Tier: TierDebug, Category: CategorySeeds, Min: 0.0, Max: 1.0, Step: 0.01, Default: 0.5},
		{Key: "random_drift", Display: "Random Drift", Tier: TierDebug, Category: CategorySeeds, Min: 0.0, Max: 1.0, Step: 0.005, Default: 0.0},

		// Field of view / projection.
		{Key: "fov", Display: "Field of View", Tier: TierDebug, Category: CategoryFOV, Min: 0.2, Max: 3.0, Step: 0.01, Default: 1.0},
		{Key: "fov_distortion", Display: "FOV Distortion", Tier: TierDebug, Category: CategoryFOV, Min: -1.0, Max: 1.0, Step: 0.005, Default: 0.0},
		{Key: "perspective_strength", Display: "Perspective Strength", Tier: TierDebug, Category: CategoryFOV, Min: 0.0, Max: 2.0, Step: 0.01, Default: 1.0},
		{Key: "horizon_curve", Display: "Horizon Curve", Tier: TierDebug, Category: CategoryFOV, Min: -1.0, Max: 1.0, Step: 0.005, Default: 0.0},
		{Key: "near_plane", Display: "Near Plane", Tier: TierDebug, Category: CategoryFOV, Min: 0.01, Max: 1.0, Step: 0.005, Default: 0.05},

		// Rendering quality.
		{Key: "ray_steps", Display: "Ray Steps", Tier: TierDebug, Category: CategoryQuality, Min: 8, Max: 256, Step: 8, Default: 64, Integer: true},
		{Key: "step_scale", Display: "Step Scale", Tier: TierDebug, Category: CategoryQuality, Min: 0.1, Max: 1.0, Step: 0.01, Default: 0.9},
		{Key: "detail_level", Display: "Detail Level", Tier: TierDebug, Category: CategoryQuality, Min: 0.1, Max: 4.0, Step: 0.05, Default: 1.0},
		{Key: "aa_samples", Display: "AA Samples", Tier: TierDebug, Category: CategoryQuality, Min: 1, Max: 4, Step: 1, Default: 1, Integer: true},
		{Key: "dither_strength", Display: "Dither Strength", Tier: TierDebug, Category: CategoryQuality, Min: 0.0, Max: 1.0, Step: 0.01, Default: 0.15},
		{Key: "max_distance", Display: "Max Distance", Tier: TierDebug, Category: CategoryQuality, Min: 5, Max: 200, Step: 5, Default: 40},
		{Key: "brightness_clamp", Display: "Brightness Clamp", Tier: TierDebug, Category: CategoryQuality, Min: 0.5, Max: 4.0, Step: 0.05, Default: 1.4},
	}
}
