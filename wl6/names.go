package wl6

// TextureNames names VSWAP wall texture pairs (two shades per wall).
var TextureNames = []string{
	"grey_brick_1", "grey_brick_2", "grey_brick__flag", "grey_brick__hitler",
	"cell", "grey_brick__eagle", "cell__skeleton", "blue_brick_1",
	"blue_brick_2", "wood__eagle", "wood__hitler", "wood", "entrance_to_level",
	"steel__sign", "steel", "landscape", "red_brick", "red_brick__swastika",
	"purple", "red_brick__flag", "elevator", "fake_elevator",
	"wood__iron_cross", "dirty_brick_1", "purple__blood", "dirty_brick_2",
	"grey_brick_3", "grey_brick__sign", "brown_weave", "brown_weave__blood_2",
	"brown_weave__blood_3", "brown_weave__blood_1", "stained_glass",
	"blue_wall__skull", "grey_wall_1", "blue_wall__swastika", "grey_wall__vent",
	"multicolor_brick", "grey_wall_2", "blue_wall", "blue_brick__sign",
	"brown_marble_1", "grey_wall__map", "brown_stone_1", "brown_stone_2",
	"brown_marble_2", "brown_marble__flag", "wood_panel", "grey_wall__hitler",
	"fake_door", "door_excavation__side_of_door", "fake_locked_door",
	"elevator_wall", "door_vertical", "door_horizontal",
	"door_vertical__gold_key", "door_horizontal__gold_key",
	"door_vertical__silver_key", "door_horizontal__silver_key",
	"elevator_door__normal", "elevator_door__horizontal",
}

// SpriteNames names VSWAP sprite pages.
var SpriteNames = []string{
	"demo", "death_cam", "water_pool", "oil_drum", "table__chairs", "lamp",
	"chandelier", "hanging_skeleton", "dog_food", "pillar", "green_plant",
	"skeleton", "sink", "brown_plant", "vase", "table", "ceiling_light",
	"utensils_brown", "armor", "cage", "cage__skeleton", "bones", "gold_key",
	"silver_key", "bed", "basket", "food", "medkit", "ammo", "machinegun",
	"chaingun", "cross", "chalace", "jewels", "crown", "extra_life",
	"bones__blood", "barrel", "well__water", "well", "blood_pool", "flag",
	"bones_1", "bones_2", "bones_3", "bones_4", "utensils_blue", "stove",
	"rack", "vines", "guard__stand_d0", "guard__stand_d1", "guard__stand_d2",
	"guard__stand_d3", "guard__stand_d4", "guard__stand_d5", "guard__stand_d6",
	"guard__stand_d7", "guard__walk_a0_d0", "guard__walk_a0_d1",
	"guard__walk_a0_d2", "guard__walk_a0_d3", "guard__walk_a0_d4",
	"guard__walk_a0_d5", "guard__walk_a0_d6", "guard__walk_a0_d7",
	"guard__walk_a1_d0", "guard__walk_a1_d1", "guard__walk_a1_d2",
	"guard__walk_a1_d3", "guard__walk_a1_d4", "guard__walk_a1_d5",
	"guard__walk_a1_d6", "guard__walk_a1_d7", "guard__walk_a2_d0",
	"guard__walk_a2_d1", "guard__walk_a2_d2", "guard__walk_a2_d3",
	"guard__walk_a2_d4", "guard__walk_a2_d5", "guard__walk_a2_d6",
	"guard__walk_a2_d7", "guard__walk_a3_d0", "guard__walk_a3_d1",
	"guard__walk_a3_d2", "guard__walk_a3_d3", "guard__walk_a3_d4",
	"guard__walk_a3_d5", "guard__walk_a3_d6", "guard__walk_a3_d7",
	"guard__pain_c1", "guard__death_a0", "guard__death_a1", "guard__death_a2",
	"guard__pain_c2", "guard__dead", "guard__attack_a0", "guard__attack_a1",
	"guard__attack_a2", "dog__walk_a0_d0", "dog__walk_a0_d1", "dog__walk_a0_d2",
	"dog__walk_a0_d3", "dog__walk_a0_d4", "dog__walk_a0_d5", "dog__walk_a0_d6",
	"dog__walk_a0_d7", "dog__walk_a1_d0", "dog__walk_a1_d1", "dog__walk_a1_d2",
	"dog__walk_a1_d3", "dog__walk_a1_d4", "dog__walk_a1_d5", "dog__walk_a1_d6",
	"dog__walk_a1_d7", "dog__walk_a2_d0", "dog__walk_a2_d1", "dog__walk_a2_d2",
	"dog__walk_a2_d3", "dog__walk_a2_d4", "dog__walk_a2_d5", "dog__walk_a2_d6",
	"dog__walk_a2_d7", "dog__walk_a3_d0", "dog__walk_a3_d1", "dog__walk_a3_d2",
	"dog__walk_a3_d3", "dog__walk_a3_d4", "dog__walk_a3_d5", "dog__walk_a3_d6",
	"dog__walk_a3_d7", "dog__death_a0", "dog__death_a1", "dog__death_a2",
	"dog__dead", "dog__attack_a0", "dog__attack_a1", "dog__attack_a2",
	"ss__stand_d0", "ss__stand_d1", "ss__stand_d2", "ss__stand_d3",
	"ss__stand_d4", "ss__stand_d5", "ss__stand_d6", "ss__stand_d7",
	"ss__walk_a0_d0", "ss__walk_a0_d1", "ss__walk_a0_d2", "ss__walk_a0_d3",
	"ss__walk_a0_d4", "ss__walk_a0_d5", "ss__walk_a0_d6", "ss__walk_a0_d7",
	"ss__walk_a1_d0", "ss__walk_a1_d1", "ss__walk_a1_d2", "ss__walk_a1_d3",
	"ss__walk_a1_d4", "ss__walk_a1_d5", "ss__walk_a1_d6", "ss__walk_a1_d7",
	"ss__walk_a2_d0", "ss__walk_a2_d1", "ss__walk_a2_d2", "ss__walk_a2_d3",
	"ss__walk_a2_d4", "ss__walk_a2_d5", "ss__walk_a2_d6", "ss__walk_a2_d7",
	"ss__walk_a3_d0", "ss__walk_a3_d1", "ss__walk_a3_d2", "ss__walk_a3_d3",
	"ss__walk_a3_d4", "ss__walk_a3_d5", "ss__walk_a3_d6", "ss__walk_a3_d7",
	"ss__pain_c1", "ss__death_a0", "ss__death_a1", "ss__death_a2",
	"ss__pain_c2", "ss__dead", "ss__attack_a0", "ss__attack_a1",
	"ss__attack_a2", "mutant__stand_d0", "mutant__stand_d1", "mutant__stand_d2",
	"mutant__stand_d3", "mutant__stand_d4", "mutant__stand_d5",
	"mutant__stand_d6", "mutant__stand_d7", "mutant__walk_a0_d0",
	"mutant__walk_a0_d1", "mutant__walk_a0_d2", "mutant__walk_a0_d3",
	"mutant__walk_a0_d4", "mutant__walk_a0_d5", "mutant__walk_a0_d6",
	"mutant__walk_a0_d7", "mutant__walk_a1_d0", "mutant__walk_a1_d1",
	"mutant__walk_a1_d2", "mutant__walk_a1_d3", "mutant__walk_a1_d4",
	"mutant__walk_a1_d5", "mutant__walk_a1_d6", "mutant__walk_a1_d7",
	"mutant__walk_a2_d0", "mutant__walk_a2_d1", "mutant__walk_a2_d2",
	"mutant__walk_a2_d3", "mutant__walk_a2_d4", "mutant__walk_a2_d5",
	"mutant__walk_a2_d6", "mutant__walk_a2_d7", "mutant__walk_a3_d0",
	"mutant__walk_a3_d1", "mutant__walk_a3_d2", "mutant__walk_a3_d3",
	"mutant__walk_a3_d4", "mutant__walk_a3_d5", "mutant__walk_a3_d6",
	"mutant__walk_a3_d7", "mutant__pain_c1", "mutant__death_a0",
	"mutant__death_a1", "mutant__death_a2", "mutant__pain_c2",
	"mutant__death_3", "mutant__dead", "mutant__attack_a0", "mutant__attack_a1",
	"mutant__attack_a2", "mutant__attack_a3", "officer__stand_d0",
	"officer__stand_d1", "officer__stand_d2", "officer__stand_d3",
	"officer__stand_d4", "officer__stand_d5", "officer__stand_d6",
	"officer__stand_d7", "officer__walk_a0_d0", "officer__walk_a0_d1",
	"officer__walk_a0_d2", "officer__walk_a0_d3", "officer__walk_a0_d4",
	"officer__walk_a0_d5", "officer__walk_a0_d6", "officer__walk_a0_d7",
	"officer__walk_a1_d0", "officer__walk_a1_d1", "officer__walk_a1_d2",
	"officer__walk_a1_d3", "officer__walk_a1_d4", "officer__walk_a1_d5",
	"officer__walk_a1_d6", "officer__walk_a1_d7", "officer__walk_a2_d0",
	"officer__walk_a2_d1", "officer__walk_a2_d2", "officer__walk_a2_d3",
	"officer__walk_a2_d4", "officer__walk_a2_d5", "officer__walk_a2_d6",
	"officer__walk_a2_d7", "officer__walk_a3_d0", "officer__walk_a3_d1",
	"officer__walk_a3_d2", "officer__walk_a3_d3", "officer__walk_a3_d4",
	"officer__walk_a3_d5", "officer__walk_a3_d6", "officer__walk_a3_d7",
	"officer__pain_c1", "officer__death_a0", "officer__death_a1",
	"officer__death_a2", "officer__pain_c2", "officer__death_a3",
	"officer__dead", "officer__attack_a0", "officer__attack_a1",
	"officer__attack_a2", "ghost_blinky__walk_a0", "ghost_blinky__walk_a1",
	"ghost_pinky__walk_a0", "ghost_pinky__walk_a1", "ghost_clyde__walk_a0",
	"ghost_clyde__walk_a1", "ghost_inky__walk_a0", "ghost_inky__walk_a1",
	"hans__walk_a0", "hans__walk_a1", "hans__walk_a2", "hans__walk_a3",
	"hans__attack_a0", "hans__attack_a1", "hans__attack_a2", "hans__dead",
	"hans__death_a0", "hans__death_a1", "hans__death_a2", "schabbs__walk_a0",
	"schabbs__walk_a1", "schabbs__walk_a2", "schabbs__walk_a3",
	"schabbs__attack_a0", "schabbs__attack_a1", "schabbs__death_a0",
	"schabbs__death_a1", "schabbs__death_a2", "schabbs__dead", "needle__fly_a0",
	"needle__fly_a1", "needle__fly_a2", "needle__fly_a3", "robed_fake__walk_a0",
	"robed_fake__walk_a1", "robed_fake__walk_a2", "robed_fake__walk_a3",
	"robed_fake__attack_a0", "fire__fly_a0", "fire__fly_a1",
	"robed_fake__death_a0", "robed_fake__death_a1", "robed_fake__death_a2",
	"robed_fake__death_a3", "robed_fake__death_a4", "robed_fake__dead",
	"mecha_hitler__walk_a0", "mecha_hitler__walk_a1", "mecha_hitler__walk_a2",
	"mecha_hitler__walk_a3", "mecha_hitler__attack_a0",
	"mecha_hitler__attack_a1", "mecha_hitler__attack_a2", "mecha_hitler__dead",
	"mecha_hitler__death_a0", "mecha_hitler__death_a1",
	"mecha_hitler__death_a2", "hitler__walk_a0", "hitler__walk_a1",
	"hitler__walk_a2", "hitler__walk_a3", "hitler__attack_a0",
	"hitler__attack_a1", "hitler__attack_a2", "hitler__dead",
	"hitler__death_a0", "hitler__death_a1", "hitler__death_a2",
	"hitler__death_a3", "hitler__death_a4", "hitler__death_a5",
	"hitler__death_a6", "otto__walk_a0", "otto__walk_a1", "otto__walk_a2",
	"otto__walk_a3", "otto__attack_a0", "otto__attack_a1", "otto__death_a0",
	"otto__death_a1", "otto__death_a2", "otto__dead", "rocket__fly_d0",
	"rocket__fly_d1", "rocket__fly_d2", "rocket__fly_d3", "rocket__fly_d7",
	"rocket__fly_d6", "rocket__fly_d5", "rocket__fly_d4", "smoke__fly_a0",
	"smoke__fly_a1", "smoke__fly_a2", "smoke__fly_a3", "boom__fly_a0",
	"boom__fly_a1", "boom__fly_a2", "gretel__walk_a0", "gretel__walk_a1",
	"gretel__walk_a2", "gretel__walk_a3", "gretel__attack_a0",
	"gretel__attack_a1", "gretel__attack_a2", "gretel__dead",
	"gretel__death_a0", "gretel__death_a1", "gretel__death_a2",
	"fettgesicht__walk_a0", "fettgesicht__walk_a1", "fettgesicht__walk_a2",
	"fettgesicht__walk_a3", "fettgesicht__attack_a0", "fettgesicht__attack_a1",
	"fettgesicht__attack_a2", "fettgesicht__attack_a3", "fettgesicht__death_a0",
	"fettgesicht__death_a1", "fettgesicht__death_a2", "fettgesicht__dead",
	"bj__walk_a0", "bj__walk_a1", "bj__walk_a2", "bj__walk_a3", "bj__jump_a0",
	"bj__jump_a1", "bj__jump_a2", "bj__jump_a3", "knife__ready",
	"knife__attack_a0", "knife__attack_a1", "knife__attack_a2",
	"knife__attack_a3", "pistol__ready", "pistol__attack_a0",
	"pistol__attack_a1", "pistol__attack_a2", "pistol__attack_a3",
	"machinegun__ready", "machinegun__attack_a0", "machinegun__attack_a1",
	"machinegun__attack_a2", "machinegun__attack_a3", "chaingun__ready",
	"chaingun__attack_a0", "chaingun__attack_a1", "chaingun__attack_a2",
	"chaingun__attack_a3",
}

// SampledSoundNames names the digitized sounds stored in VSWAP pages.
var SampledSoundNames = []string{
	"guard__wake", "dog__wake", "door__close", "door__open",
	"machinegun__attack", "pistol__attack", "chaingun__attack", "ss__wake",
	"hans__wake", "hans__death", "boss_gun__attack", "ss__attack",
	"guard__death_1", "guard__death_2", "guard__death_3", "pushwall__move",
	"dog__death", "mutant__death", "hitler__wake", "hitler__death", "ss__death",
	"guard__attack", "blood__slurpie", "robed_fake__wake", "schabbs__death",
	"schabbs__wake", "robed_fake__death", "officer__wake", "officer__death",
	"dog__attack", "elevator__use", "mecha_hitler__step", "bj__yeah",
	"mecha_hitler__death", "guard__death_4", "guard__death_5", "otto__death",
	"otto__wake", "fettgesicht__wake", "secret__death", "guard__death_6",
	"guard__death_7", "guard__death_8", "gretel__wake", "gretel__death",
	"fettgesicht__death",
}

// MusicNames are the display titles of the AUDIOT music chunks.
var MusicNames = []string{
	"Enemy Around the Corner", "Into the Dungeons", "The March to War",
	"Get Them Before They Get You", "Pounding Headache", "Hitler Waltz",
	"Kill the S.O.B.", "Horst-Wessel-Lied", "Nazi Anthem", "P.O.W.", "Salute",
	"Searching For the Enemy", "Suspense", "Victors",
	"Wondering About My Loved Ones", "Funk You!", "End of Level",
	"Going After Hitler", "Lurking...", "The Ultimate Challenge",
	"The Nazi Rap", "Zero Hour", "Twelfth Hour", "Roster", "U R A Hero",
	"Victory March", "Wolf Pac",
}

// MusicLabels are the source-code labels of the AUDIOT music chunks.
var MusicLabels = []string{
	"CORNER_MUS", "DUNGEON_MUS", "WARMARCH_MUS", "GETTHEM_MUS", "HEADACHE_MUS",
	"HITLWLTZ_MUS", "INTROCW3_MUS", "NAZI_NOR_MUS", "NAZI_OMI_MUS", "POW_MUS",
	"SALUTE_MUS", "SEARCHN_MUS", "SUSPENSE_MUS", "VICTORS_MUS", "WONDERIN_MUS",
	"FUNKYOU_MUS", "ENDLEVEL_MUS", "GOINGAFT_MUS", "PREGNANT_MUS",
	"ULTIMATE_MUS", "NAZI_RAP_MUS", "ZEROHOUR_MUS", "TWELFTH_MUS", "ROSTER_MUS",
	"URAHERO_MUS", "VICMARCH_MUS", "PACMAN_MUS",
}

// PictureLabels are the source-code labels of the VGAGRAPH pics.
var PictureLabels = []string{
	"H_BJPIC", "H_CASTLEPIC", "H_BLAZEPIC", "H_TOPWINDOWPIC", "H_LEFTWINDOWPIC",
	"H_RIGHTWINDOWPIC", "H_BOTTOMINFOPIC", "C_OPTIONSPIC", "C_CURSOR1PIC",
	"C_CURSOR2PIC", "C_NOTSELECTEDPIC", "C_SELECTEDPIC", "C_FXTITLEPIC",
	"C_DIGITITLEPIC", "C_MUSICTITLEPIC", "C_MOUSELBACKPIC", "C_BABYMODEPIC",
	"C_EASYPIC", "C_NORMALPIC", "C_HARDPIC", "C_LOADSAVEDISKPIC",
	"C_DISKLOADING1PIC", "C_DISKLOADING2PIC", "C_CONTROLPIC", "C_CUSTOMIZEPIC",
	"C_LOADGAMEPIC", "C_SAVEGAMEPIC", "C_EPISODE1PIC", "C_EPISODE2PIC",
	"C_EPISODE3PIC", "C_EPISODE4PIC", "C_EPISODE5PIC", "C_EPISODE6PIC",
	"C_CODEPIC", "C_TIMECODEPIC", "C_LEVELPIC", "C_NAMEPIC", "C_SCOREPIC",
	"C_JOY1PIC", "C_JOY2PIC", "L_GUYPIC", "L_COLONPIC", "L_NUM0PIC",
	"L_NUM1PIC", "L_NUM2PIC", "L_NUM3PIC", "L_NUM4PIC", "L_NUM5PIC",
	"L_NUM6PIC", "L_NUM7PIC", "L_NUM8PIC", "L_NUM9PIC", "L_PERCENTPIC",
	"L_APIC", "L_BPIC", "L_CPIC", "L_DPIC", "L_EPIC", "L_FPIC", "L_GPIC",
	"L_HPIC", "L_IPIC", "L_JPIC", "L_KPIC", "L_LPIC", "L_MPIC", "L_NPIC",
	"L_OPIC", "L_PPIC", "L_QPIC", "L_RPIC", "L_SPIC", "L_TPIC", "L_UPIC",
	"L_VPIC", "L_WPIC", "L_XPIC", "L_YPIC", "L_ZPIC", "L_EXPOINTPIC",
	"L_APOSTROPHEPIC", "L_GUY2PIC", "L_BJWINSPIC", "STATUSBARPIC", "TITLEPIC",
	"PG13PIC", "CREDITSPIC", "HIGHSCORESPIC", "KNIFEPIC", "GUNPIC",
	"MACHINEGUNPIC", "GATLINGGUNPIC", "NOKEYPIC", "GOLDKEYPIC", "SILVERKEYPIC",
	"N_BLANKPIC", "N_0PIC", "N_1PIC", "N_2PIC", "N_3PIC", "N_4PIC", "N_5PIC",
	"N_6PIC", "N_7PIC", "N_8PIC", "N_9PIC", "FACE1APIC", "FACE1BPIC",
	"FACE1CPIC", "FACE2APIC", "FACE2BPIC", "FACE2CPIC", "FACE3APIC",
	"FACE3BPIC", "FACE3CPIC", "FACE4APIC", "FACE4BPIC", "FACE4CPIC",
	"FACE5APIC", "FACE5BPIC", "FACE5CPIC", "FACE6APIC", "FACE6BPIC",
	"FACE6CPIC", "FACE7APIC", "FACE7BPIC", "FACE7CPIC", "FACE8APIC",
	"GOTGATLINGPIC", "MUTANTBJPIC", "PAUSEDPIC", "GETPSYCHEDPIC",
}

// SoundLabels are the source-code labels shared by the buzzer and AdLib sound partitions.
var SoundLabels = []string{
	"HITWALLSND", "SELECTWPNSND", "SELECTITEMSND", "HEARTBEATSND",
	"MOVEGUN2SND", "MOVEGUN1SND", "NOWAYSND", "NAZIHITPLAYERSND",
	"SCHABBSTHROWSND", "PLAYERDEATHSND", "DOGDEATHSND", "ATKGATLINGSND",
	"GETKEYSND", "NOITEMSND", "WALK1SND", "WALK2SND", "TAKEDAMAGESND",
	"GAMEOVERSND", "OPENDOORSND", "CLOSEDOORSND", "DONOTHINGSND", "HALTSND",
	"DEATHSCREAM2SND", "ATKKNIFESND", "ATKPISTOLSND", "DEATHSCREAM3SND",
	"ATKMACHINEGUNSND", "HITENEMYSND", "SHOOTDOORSND", "DEATHSCREAM1SND",
	"GETMACHINESND", "GETAMMOSND", "SHOOTSND", "HEALTH1SND", "HEALTH2SND",
	"BONUS1SND", "BONUS2SND", "BONUS3SND", "GETGATLINGSND", "ESCPRESSEDSND",
	"LEVELDONESND", "DOGBARKSND", "ENDBONUS1SND", "ENDBONUS2SND", "BONUS1UPSND",
	"BONUS4SND", "PUSHWALLSND", "NOBONUSSND", "PERCENT100SND", "BOSSACTIVESND",
	"MUTTISND", "SCHUTZADSND", "AHHHGSND", "DIESND", "EVASND", "GUTENTAGSND",
	"LEBENSND", "SCHEISTSND", "NAZIFIRESND", "BOSSFIRESND", "SSFIRESND",
	"SLURPIESND", "TOT_HUNDSND", "MEINGOTTSND", "SCHABBSHASND", "HITLERHASND",
	"SPIONSND", "NEINSOVASSND", "DOGATTACKSND", "FLAMETHROWERSND",
	"MECHSTEPSND", "GOOBSSND", "YEAHSND", "DEATHSCREAM4SND", "DEATHSCREAM5SND",
	"DEATHSCREAM6SND", "DEATHSCREAM7SND", "DEATHSCREAM8SND", "DEATHSCREAM9SND",
	"DONNERSND", "EINESND", "ERLAUBENSND", "KEINSND", "MEINSND", "ROSESND",
	"MISSILEFIRESND", "MISSILEHITSND",
}
