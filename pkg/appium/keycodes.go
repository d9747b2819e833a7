package appium

// AndroidKey is an Android KeyEvent key code.
type AndroidKey int

// Key codes from android.view.KeyEvent.
const (
	KeyUnknown                   AndroidKey = 0
	KeySoftLeft                  AndroidKey = 1
	KeySoftRight                 AndroidKey = 2
	KeyHome                      AndroidKey = 3
	KeyBack                      AndroidKey = 4
	KeyCall                      AndroidKey = 5
	KeyEndCall                   AndroidKey = 6
	KeyDigit0                    AndroidKey = 7
	KeyDigit1                    AndroidKey = 8
	KeyDigit2                    AndroidKey = 9
	KeyDigit3                    AndroidKey = 10
	KeyDigit4                    AndroidKey = 11
	KeyDigit5                    AndroidKey = 12
	KeyDigit6                    AndroidKey = 13
	KeyDigit7                    AndroidKey = 14
	KeyDigit8                    AndroidKey = 15
	KeyDigit9                    AndroidKey = 16
	KeyAsterisk                  AndroidKey = 17
	KeyPound                     AndroidKey = 18
	KeyDPadUp                    AndroidKey = 19
	KeyDPadDown                  AndroidKey = 20
	KeyDPadLeft                  AndroidKey = 21
	KeyDPadRight                 AndroidKey = 22
	KeyDPadCenter                AndroidKey = 23
	KeyVolumeUp                  AndroidKey = 24
	KeyVolumeDown                AndroidKey = 25
	KeyPower                     AndroidKey = 26
	KeyCamera                    AndroidKey = 27
	KeyClear                     AndroidKey = 28
	KeyA                         AndroidKey = 29
	KeyB                         AndroidKey = 30
	KeyC                         AndroidKey = 31
	KeyD                         AndroidKey = 32
	KeyE                         AndroidKey = 33
	KeyF                         AndroidKey = 34
	KeyG                         AndroidKey = 35
	KeyH                         AndroidKey = 36
	KeyI                         AndroidKey = 37
	KeyJ                         AndroidKey = 38
	KeyK                         AndroidKey = 39
	KeyL                         AndroidKey = 40
	KeyM                         AndroidKey = 41
	KeyN                         AndroidKey = 42
	KeyO                         AndroidKey = 43
	KeyP                         AndroidKey = 44
	KeyQ                         AndroidKey = 45
	KeyR                         AndroidKey = 46
	KeyS                         AndroidKey = 47
	KeyT                         AndroidKey = 48
	KeyU                         AndroidKey = 49
	KeyV                         AndroidKey = 50
	KeyW                         AndroidKey = 51
	KeyX                         AndroidKey = 52
	KeyY                         AndroidKey = 53
	KeyZ                         AndroidKey = 54
	KeyComma                     AndroidKey = 55
	KeyPeriod                    AndroidKey = 56
	KeyAltLeft                   AndroidKey = 57
	KeyAltRight                  AndroidKey = 58
	KeyShiftLeft                 AndroidKey = 59
	KeyShiftRight                AndroidKey = 60
	KeyTab                       AndroidKey = 61
	KeySpace                     AndroidKey = 62
	KeySym                       AndroidKey = 63
	KeyExplorer                  AndroidKey = 64
	KeyEnvelope                  AndroidKey = 65
	KeyEnter                     AndroidKey = 66
	KeyDel                       AndroidKey = 67
	KeyGrave                     AndroidKey = 68
	KeyMinus                     AndroidKey = 69
	KeyEquals                    AndroidKey = 70
	KeyLeftBracket               AndroidKey = 71
	KeyRightBracket              AndroidKey = 72
	KeyBackslash                 AndroidKey = 73
	KeySemicolon                 AndroidKey = 74
	KeyApostrophe                AndroidKey = 75
	KeySlash                     AndroidKey = 76
	KeyAt                        AndroidKey = 77
	KeyNum                       AndroidKey = 78
	KeyHeadsetHook               AndroidKey = 79
	KeyFocus                     AndroidKey = 80
	KeyPlus                      AndroidKey = 81
	KeyMenu                      AndroidKey = 82
	KeyNotification              AndroidKey = 83
	KeySearch                    AndroidKey = 84
	KeyMediaPlayPause            AndroidKey = 85
	KeyMediaStop                 AndroidKey = 86
	KeyMediaNext                 AndroidKey = 87
	KeyMediaPrevious             AndroidKey = 88
	KeyMediaRewind               AndroidKey = 89
	KeyMediaFastForward          AndroidKey = 90
	KeyMute                      AndroidKey = 91
	KeyPageUp                    AndroidKey = 92
	KeyPageDown                  AndroidKey = 93
	KeyPictSymbols               AndroidKey = 94
	KeySwitchCharset             AndroidKey = 95
	KeyButtonA                   AndroidKey = 96
	KeyButtonB                   AndroidKey = 97
	KeyButtonC                   AndroidKey = 98
	KeyButtonX                   AndroidKey = 99
	KeyButtonY                   AndroidKey = 100
	KeyButtonZ                   AndroidKey = 101
	KeyButtonL1                  AndroidKey = 102
	KeyButtonR1                  AndroidKey = 103
	KeyButtonL2                  AndroidKey = 104
	KeyButtonR2                  AndroidKey = 105
	KeyButtonThumbL              AndroidKey = 106
	KeyButtonThumbR              AndroidKey = 107
	KeyButtonStart               AndroidKey = 108
	KeyButtonSelect              AndroidKey = 109
	KeyButtonMode                AndroidKey = 110
	KeyEscape                    AndroidKey = 111
	KeyForwardDel                AndroidKey = 112
	KeyCtrlLeft                  AndroidKey = 113
	KeyCtrlRight                 AndroidKey = 114
	KeyCapsLock                  AndroidKey = 115
	KeyScrollLock                AndroidKey = 116
	KeyMetaLeft                  AndroidKey = 117
	KeyMetaRight                 AndroidKey = 118
	KeyFunction                  AndroidKey = 119
	KeySysRq                     AndroidKey = 120
	KeyBreak                     AndroidKey = 121
	KeyMoveHome                  AndroidKey = 122
	KeyMoveEnd                   AndroidKey = 123
	KeyInsert                    AndroidKey = 124
	KeyForward                   AndroidKey = 125
	KeyMediaPlay                 AndroidKey = 126
	KeyMediaPause                AndroidKey = 127
	KeyMediaClose                AndroidKey = 128
	KeyMediaEject                AndroidKey = 129
	KeyMediaRecord               AndroidKey = 130
	KeyF1                        AndroidKey = 131
	KeyF2                        AndroidKey = 132
	KeyF3                        AndroidKey = 133
	KeyF4                        AndroidKey = 134
	KeyF5                        AndroidKey = 135
	KeyF6                        AndroidKey = 136
	KeyF7                        AndroidKey = 137
	KeyF8                        AndroidKey = 138
	KeyF9                        AndroidKey = 139
	KeyF10                       AndroidKey = 140
	KeyF11                       AndroidKey = 141
	KeyF12                       AndroidKey = 142
	KeyNumLock                   AndroidKey = 143
	KeyNumpad0                   AndroidKey = 144
	KeyNumpad1                   AndroidKey = 145
	KeyNumpad2                   AndroidKey = 146
	KeyNumpad3                   AndroidKey = 147
	KeyNumpad4                   AndroidKey = 148
	KeyNumpad5                   AndroidKey = 149
	KeyNumpad6                   AndroidKey = 150
	KeyNumpad7                   AndroidKey = 151
	KeyNumpad8                   AndroidKey = 152
	KeyNumpad9                   AndroidKey = 153
	KeyNumpadDivide              AndroidKey = 154
	KeyNumpadMultiply            AndroidKey = 155
	KeyNumpadSubtract            AndroidKey = 156
	KeyNumpadAdd                 AndroidKey = 157
	KeyNumpadDot                 AndroidKey = 158
	KeyNumpadComma               AndroidKey = 159
	KeyNumpadEnter               AndroidKey = 160
	KeyNumpadEquals              AndroidKey = 161
	KeyNumpadLeftParen           AndroidKey = 162
	KeyNumpadRightParen          AndroidKey = 163
	KeyVolumeMute                AndroidKey = 164
	KeyInfo                      AndroidKey = 165
	KeyChannelUp                 AndroidKey = 166
	KeyChannelDown               AndroidKey = 167
	KeyZoomIn                    AndroidKey = 168
	KeyZoomOut                   AndroidKey = 169
	KeyTV                        AndroidKey = 170
	KeyWindow                    AndroidKey = 171
	KeyGuide                     AndroidKey = 172
	KeyDVR                       AndroidKey = 173
	KeyBookmark                  AndroidKey = 174
	KeyCaptions                  AndroidKey = 175
	KeySettings                  AndroidKey = 176
	KeyTVPower                   AndroidKey = 177
	KeyTVInput                   AndroidKey = 178
	KeySTBPower                  AndroidKey = 179
	KeySTBInput                  AndroidKey = 180
	KeyAVRPower                  AndroidKey = 181
	KeyAVRInput                  AndroidKey = 182
	KeyProgRed                   AndroidKey = 183
	KeyProgGreen                 AndroidKey = 184
	KeyProgYellow                AndroidKey = 185
	KeyProgBlue                  AndroidKey = 186
	KeyAppSwitch                 AndroidKey = 187
	KeyButton1                   AndroidKey = 188
	KeyButton2                   AndroidKey = 189
	KeyButton3                   AndroidKey = 190
	KeyButton4                   AndroidKey = 191
	KeyButton5                   AndroidKey = 192
	KeyButton6                   AndroidKey = 193
	KeyButton7                   AndroidKey = 194
	KeyButton8                   AndroidKey = 195
	KeyButton9                   AndroidKey = 196
	KeyButton10                  AndroidKey = 197
	KeyButton11                  AndroidKey = 198
	KeyButton12                  AndroidKey = 199
	KeyButton13                  AndroidKey = 200
	KeyButton14                  AndroidKey = 201
	KeyButton15                  AndroidKey = 202
	KeyButton16                  AndroidKey = 203
	KeyLanguageSwitch            AndroidKey = 204
	KeyMannerMode                AndroidKey = 205
	KeyMode3D                    AndroidKey = 206
	KeyContacts                  AndroidKey = 207
	KeyCalendar                  AndroidKey = 208
	KeyMusic                     AndroidKey = 209
	KeyCalculator                AndroidKey = 210
	KeyZenkakuHankaku            AndroidKey = 211
	KeyEisu                      AndroidKey = 212
	KeyMuhenkan                  AndroidKey = 213
	KeyHenkan                    AndroidKey = 214
	KeyKatakanaHiragana          AndroidKey = 215
	KeyYen                       AndroidKey = 216
	KeyRo                        AndroidKey = 217
	KeyKana                      AndroidKey = 218
	KeyAssist                    AndroidKey = 219
	KeyBrightnessDown            AndroidKey = 220
	KeyBrightnessUp              AndroidKey = 221
	KeyMediaAudioTrack           AndroidKey = 222
	KeySleep                     AndroidKey = 223
	KeyWakeUp                    AndroidKey = 224
	KeyPairing                   AndroidKey = 225
	KeyMediaTopMenu              AndroidKey = 226
	KeyKey11                     AndroidKey = 227
	KeyKey12                     AndroidKey = 228
	KeyLastChannel               AndroidKey = 229
	KeyTVDataService             AndroidKey = 230
	KeyVoiceAssist               AndroidKey = 231
	KeyTVRadioService            AndroidKey = 232
	KeyTVTeletext                AndroidKey = 233
	KeyTVNumberEntry             AndroidKey = 234
	KeyTVTerrestrialAnalog       AndroidKey = 235
	KeyTVTerrestrialDigital      AndroidKey = 236
	KeyTVSatellite               AndroidKey = 237
	KeyTVSatelliteBS             AndroidKey = 238
	KeyTVSatelliteCS             AndroidKey = 239
	KeyTVSatelliteService        AndroidKey = 240
	KeyTVNetwork                 AndroidKey = 241
	KeyTVAntennaCable            AndroidKey = 242
	KeyTVInputHdmi1              AndroidKey = 243
	KeyTVInputHdmi2              AndroidKey = 244
	KeyTVInputHdmi3              AndroidKey = 245
	KeyTVInputHdmi4              AndroidKey = 246
	KeyTVInputComposite1         AndroidKey = 247
	KeyTVInputComposite2         AndroidKey = 248
	KeyTVInputComponent1         AndroidKey = 249
	KeyTVInputComponent2         AndroidKey = 250
	KeyTVInputVga1               AndroidKey = 251
	KeyTVAudioDescription        AndroidKey = 252
	KeyTVAudioDescriptionMixUp   AndroidKey = 253
	KeyTVAudioDescriptionMixDown AndroidKey = 254
	KeyTVZoomMode                AndroidKey = 255
	KeyTVContentsMenu            AndroidKey = 256
	KeyTVMediaContextMenu        AndroidKey = 257
	KeyTVTimerProgramming        AndroidKey = 258
	KeyHelp                      AndroidKey = 259
	KeyNavigatePrevious          AndroidKey = 260
	KeyNavigateNext              AndroidKey = 261
	KeyNavigateIn                AndroidKey = 262
	KeyNavigateOut               AndroidKey = 263
	KeyStemPrimary               AndroidKey = 264
	KeyStem1                     AndroidKey = 265
	KeyStem2                     AndroidKey = 266
	KeyStem3                     AndroidKey = 267
	KeyDPadUpLeft                AndroidKey = 268
	KeyDPadDownLeft              AndroidKey = 269
	KeyDPadUpRight               AndroidKey = 270
	KeyDPadDownRight             AndroidKey = 271
	KeyMediaSkipForward          AndroidKey = 272
	KeyMediaSkipBackward         AndroidKey = 273
	KeyMediaStepForward          AndroidKey = 274
	KeyMediaStepBackward         AndroidKey = 275
	KeySoftSleep                 AndroidKey = 276
	KeyCut                       AndroidKey = 277
	KeyCopy                      AndroidKey = 278
	KeyPaste                     AndroidKey = 279
)
